package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func newTestAPI(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	InitAPIClient(srv.URL, 2*time.Second)
	return srv
}

func TestDoRequestAttachesBearerToken(t *testing.T) {
	var gotAuth string
	newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})

	if err := apiGet(context.Background(), "/book", nil, "token-abc", nil); err != nil {
		t.Fatalf("apiGet: %v", err)
	}
	if gotAuth != "Bearer token-abc" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
}

func TestDoRequestNoTokenNoHeader(t *testing.T) {
	var hasAuth bool
	newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	})

	if err := apiGet(context.Background(), "/book", nil, "", nil); err != nil {
		t.Fatalf("apiGet: %v", err)
	}
	if hasAuth {
		t.Fatal("header Authorization terkirim tanpa token")
	}
}

func TestDoRequestUnauthorized(t *testing.T) {
	newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	err := apiGet(context.Background(), "/book", nil, "expired", nil)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, ingin ErrUnauthorized", err)
	}
}

func TestDoRequestErrorMessage(t *testing.T) {
	t.Run("pesan dari server", func(t *testing.T) {
		newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"message":"Book number already exists"}`))
		})

		err := apiGet(context.Background(), "/book", nil, "t", nil)
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("err = %T", err)
		}
		if apiErr.StatusCode != http.StatusConflict || apiErr.Message != "Book number already exists" {
			t.Fatalf("apiErr = %+v", apiErr)
		}
	})

	t.Run("fallback tanpa body", func(t *testing.T) {
		newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		err := apiGet(context.Background(), "/book", nil, "t", nil)
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("err = %T", err)
		}
		if apiErr.Message != "Something went wrong" {
			t.Fatalf("Message = %q", apiErr.Message)
		}
	})
}

func TestDoRequestDecodesOut(t *testing.T) {
	newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("page = %q", got)
		}
		w.Write([]byte(`{"message":"ok"}`))
	})

	var out struct {
		Message string `json:"message"`
	}
	params := url.Values{"page": {"2"}}
	if err := apiGet(context.Background(), "/book", params, "t", &out); err != nil {
		t.Fatalf("apiGet: %v", err)
	}
	if out.Message != "ok" {
		t.Fatalf("out = %+v", out)
	}
}

func TestApiSendMultipartFields(t *testing.T) {
	var gotMethod, gotNomor, gotJudul string
	newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("bukan multipart: %v", err)
		}
		gotNomor = r.FormValue("nomor")
		gotJudul = r.FormValue("judul")
		w.Write([]byte(`{}`))
	})

	fields := map[string]string{"nomor": "B-001", "judul": "Laskar Pelangi"}
	if err := apiSendMultipart(context.Background(), http.MethodPut, "/book/1", fields, nil, "t", nil); err != nil {
		t.Fatalf("apiSendMultipart: %v", err)
	}
	if gotMethod != http.MethodPut {
		t.Fatalf("method = %s", gotMethod)
	}
	if gotNomor != "B-001" || gotJudul != "Laskar Pelangi" {
		t.Fatalf("fields = %q %q", gotNomor, gotJudul)
	}
}
