package httptransport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-cms/internal/domain/auth"
	"portfolio-cms/internal/platform/logging"
)

func newGateEngine(t *testing.T, codec *auth.Codec) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger, err := logging.New(logging.Config{Level: "error"})
	if err != nil {
		t.Fatalf("create logger: %v", err)
	}

	engine := gin.New()
	secured := engine.Group("/api")
	secured.Use(NewRequestGate(codec, logger))
	secured.GET("/protected", func(c *gin.Context) {
		id, ok := UserID(c)
		if !ok {
			t.Error("gate admitted a request without attaching the subject")
		}
		RespondSuccess(c, http.StatusOK, gin.H{"user_id": id}, "")
	})
	return engine
}

func doRequest(engine *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestGateAdmitsValidToken(t *testing.T) {
	codec := auth.NewCodec(auth.CodecConfig{Secret: "gate-secret", TTL: time.Hour})
	engine := newGateEngine(t, codec)

	token, err := codec.Issue(5)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	rec := doRequest(engine, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	data := resp.Data.(map[string]any)
	if data["user_id"].(float64) != 5 {
		t.Fatalf("expected user_id 5, got %v", data["user_id"])
	}
}

func TestGateRejectionsAreUniform(t *testing.T) {
	codec := auth.NewCodec(auth.CodecConfig{Secret: "gate-secret", TTL: time.Hour})
	engine := newGateEngine(t, codec)

	expired := auth.NewCodec(auth.CodecConfig{Secret: "gate-secret", TTL: time.Hour}).
		WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) })
	expiredToken, err := expired.Issue(5)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	forged := auth.NewCodec(auth.CodecConfig{Secret: "other-secret", TTL: time.Hour})
	forgedToken, err := forged.Issue(5)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	cases := map[string]string{
		"missing credential": "",
		"malformed token":    "Bearer not-a-token",
		"expired token":      "Bearer " + expiredToken,
		"forged token":       "Bearer " + forgedToken,
	}

	var bodies []string
	for name, header := range cases {
		rec := doRequest(engine, header)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", name, rec.Code)
		}
		bodies = append(bodies, rec.Body.String())
	}

	// The response body must not betray which failure mode occurred.
	for _, body := range bodies[1:] {
		if body != bodies[0] {
			t.Fatalf("rejection bodies differ: %q vs %q", bodies[0], body)
		}
	}
}

func TestGateWithoutBearerPrefix(t *testing.T) {
	codec := auth.NewCodec(auth.CodecConfig{Secret: "gate-secret", TTL: time.Hour})
	engine := newGateEngine(t, codec)

	token, err := codec.Issue(9)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// A bare token without the Bearer prefix is still accepted.
	rec := doRequest(engine, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
