package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/canvas"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/catalog"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/errs"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/models"
)

type staticToken string

func (s staticToken) Load() (string, error) { return string(s), nil }

func TestSerialize_ValidatesName(t *testing.T) {
	tests := []struct {
		name    string
		boxName string
		wantErr bool
	}{
		{name: "empty", boxName: "", wantErr: true},
		{name: "whitespace only", boxName: "   ", wantErr: true},
		{name: "too long", boxName: strings.Repeat("x", 101), wantErr: true},
		{name: "at the limit", boxName: strings.Repeat("x", 100), wantErr: false},
		{name: "normal", boxName: "My Lunch", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Serialize(tt.boxName, "", nil, "", false)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSerialize_TrimsName(t *testing.T) {
	in, err := Serialize("  My Lunch  ", "", nil, "", false)
	require.NoError(t, err)
	assert.Equal(t, "My Lunch", in.Name)
	assert.NotNil(t, in.Ingredients)
}

func TestSerializeDeserialize_RoundTrip(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	snap := canvas.Snapshot{
		{IngredientID: "onigiri", Name: "Onigiri", Category: "rice",
			Position: models.Point{X: 120, Y: 80}, Rotation: 45, Scale: models.Vec{X: 1, Y: 1}},
		{IngredientID: "carrot", Name: "Carrot", Category: "vegetable",
			Position: models.Point{X: 430, Y: 200}, Rotation: 0, Scale: models.Vec{X: 1.5, Y: 1.5}},
	}

	in, err := Serialize("Lunch", "desc", snap, "", true)
	require.NoError(t, err)
	require.Len(t, in.Ingredients, 2)

	restored, skipped := Deserialize(cat, in.Ingredients)
	assert.Zero(t, skipped)
	assert.Equal(t, snap, restored)
}

func TestDeserialize_SkipsUnknownIngredients(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	ingredients := []models.PlacedIngredient{
		{ID: "onigiri", Name: "Onigiri", Category: "rice", Scale: models.Vec{X: 1, Y: 1}},
		{ID: "dragonfruit", Name: "Dragonfruit", Category: "vegetable"},
		{ID: "salmon", Name: "Salmon", Category: "protein", Scale: models.Vec{X: 1, Y: 1}},
	}

	snap, skipped := Deserialize(cat, ingredients)
	assert.Equal(t, 1, skipped)
	require.Len(t, snap, 2)
	assert.Equal(t, "onigiri", snap[0].IngredientID)
	assert.Equal(t, "salmon", snap[1].IngredientID)
}

func TestClient_Save_PostWhenNoID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/bentoboxes", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"b1","name":"Lunch"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken("tok"))
	box, err := c.Save(context.Background(), "", models.BentoBoxInput{Name: "Lunch"})
	require.NoError(t, err)
	assert.Equal(t, "b1", box.ID)
}

func TestClient_Save_PutWhenIDPresent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/bentoboxes/b1", r.URL.Path)
		w.Write([]byte(`{"id":"b1","name":"Lunch v2"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken("tok"))
	box, err := c.Save(context.Background(), "b1", models.BentoBoxInput{Name: "Lunch v2"})
	require.NoError(t, err)
	assert.Equal(t, "Lunch v2", box.Name)
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected error
	}{
		{name: "bad request", status: http.StatusBadRequest, body: `{"error":"name is required"}`, expected: errs.ErrValidation},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error":"invalid credentials"}`, expected: errs.ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, body: `{"error":"access denied"}`, expected: errs.ErrForbidden},
		{name: "not found", status: http.StatusNotFound, body: `{"error":"not found"}`, expected: errs.ErrNotFound},
		{name: "conflict", status: http.StatusConflict, body: `{"error":"email taken"}`, expected: errs.ErrAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := New(srv.URL, staticToken(""))
			_, err := c.GetBox(context.Background(), "b1")
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestClient_TransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New(srv.URL, staticToken(""))
	_, err := c.ListMine(context.Background())
	assert.ErrorIs(t, err, errs.ErrNetwork)
}

func TestClient_LoginAndMe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			w.Write([]byte(`{"token":"tok","user":{"id":"u1","username":"alice"}}`))
		case "/api/auth/me":
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			w.Write([]byte(`{"user":{"id":"u1","username":"alice"}}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken("tok"))

	creds, err := c.Login(context.Background(), "a@b.c", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "tok", creds.Token)
	assert.Equal(t, "alice", creds.User.Username)

	user, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestClient_DeleteBox(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/bentoboxes/b1", r.URL.Path)
		w.Write([]byte(`{"message":"bento box deleted"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken("tok"))
	require.NoError(t, c.DeleteBox(context.Background(), "b1"))
}
