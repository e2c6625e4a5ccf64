package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/futebolao/futebolao/internal/domain/user"
	"github.com/futebolao/futebolao/internal/usecase"
)

func TestSubmitPrediction_RequiresAuth(t *testing.T) {
	router := newSyncTestRouter(t, stubVerifier{err: usecase.ErrUnauthorized}, stubWindowProvider{}, true)

	req := httptest.NewRequest(http.MethodPost, "/v1/predictions", strings.NewReader(`{"matchId":"match-1","homeGuess":2,"awayGuess":1}`))
	req.Header.Set("Authorization", "Bearer expired-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestSubmitPrediction_LockedAfterKickoff(t *testing.T) {
	// The seeded match kicked off an hour ago, so submission must be rejected.
	verifier := stubVerifier{principal: user.Principal{UserID: "u-1", Role: "player"}}
	router := newSyncTestRouter(t, verifier, stubWindowProvider{}, true)

	req := httptest.NewRequest(http.MethodPost, "/v1/predictions", strings.NewReader(`{"matchId":"match-1","homeGuess":2,"awayGuess":1}`))
	req.Header.Set("Authorization", "Bearer session-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestSubmitPrediction_RejectsUnknownField(t *testing.T) {
	verifier := stubVerifier{principal: user.Principal{UserID: "u-1", Role: "player"}}
	router := newSyncTestRouter(t, verifier, stubWindowProvider{}, true)

	req := httptest.NewRequest(http.MethodPost, "/v1/predictions", strings.NewReader(`{"matchId":"match-1","homeGuess":2,"awayGuess":1,"extra":true}`))
	req.Header.Set("Authorization", "Bearer session-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestListChampionships_PublicEnvelope(t *testing.T) {
	router := newSyncTestRouter(t, stubVerifier{}, stubWindowProvider{}, true)

	req := httptest.NewRequest(http.MethodGet, "/v1/championships", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body struct {
		APIVersion string            `json:"apiVersion"`
		Data       []championshipDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if body.APIVersion != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %q", body.APIVersion)
	}
	if len(body.Data) != 1 || body.Data[0].ID != "champ-1" {
		t.Fatalf("unexpected championship list %+v", body.Data)
	}
}

func TestCreateChampionship_AdminOnly(t *testing.T) {
	verifier := stubVerifier{principal: user.Principal{UserID: "u-1", Role: "player"}}
	router := newSyncTestRouter(t, verifier, stubWindowProvider{}, true)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/championships", strings.NewReader(`{"name":"Copa do Brasil"}`))
	req.Header.Set("Authorization", "Bearer session-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", rec.Code)
	}
}

func TestCreateChampionship_DefaultsApplied(t *testing.T) {
	verifier := stubVerifier{principal: user.Principal{UserID: "u-admin", Role: user.RoleAdmin}}
	router := newSyncTestRouter(t, verifier, stubWindowProvider{}, true)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/championships", strings.NewReader(`{"name":"Copa do Brasil"}`))
	req.Header.Set("Authorization", "Bearer session-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d body=%s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data championshipDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if body.Data.CreationType != "manual" || body.Data.APIScoreType != "fullTime" {
		t.Fatalf("expected manual/fullTime defaults, got %+v", body.Data)
	}
}
