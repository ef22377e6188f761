package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"matching-srv/internal/matching"
	"matching-srv/internal/matching/engine"
	"matching-srv/internal/model"
	"matching-srv/pkg/locale"
	"matching-srv/pkg/log"
	"matching-srv/pkg/paginator"
	"matching-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

type fakeUseCase struct {
	matching.UseCase

	err          error
	gotInfluence matching.RecommendInfluencersInput
	gotAdHoc     matching.ScoreAdHocInput
	gotRuns      matching.ListMatchRunsInput
	gotRecompute matching.RecomputeCampaignInput
	gotScope     model.Scope
	scores       []engine.MatchingScore
}

func (f *fakeUseCase) RecommendInfluencers(_ context.Context, sc model.Scope, in matching.RecommendInfluencersInput) (matching.RecommendInfluencersOutput, error) {
	f.gotScope, f.gotInfluence = sc, in
	if f.err != nil {
		return matching.RecommendInfluencersOutput{}, f.err
	}
	return matching.RecommendInfluencersOutput{CampaignID: in.CampaignID, Matches: f.scores, CandidatesTotal: 2}, nil
}

func (f *fakeUseCase) ScoreCandidate(_ context.Context, _ model.Scope, in matching.ScoreCandidateInput) (engine.MatchingScore, error) {
	if f.err != nil {
		return engine.MatchingScore{}, f.err
	}
	return engine.MatchingScore{CandidateID: in.InfluencerID, TotalScore: 25, Reasons: []string{engine.ReasonFallback}}, nil
}

func (f *fakeUseCase) ScoreAdHoc(_ context.Context, in matching.ScoreAdHocInput) ([]engine.MatchingScore, error) {
	f.gotAdHoc = in
	return f.scores, f.err
}

func (f *fakeUseCase) ListMatchRuns(_ context.Context, _ model.Scope, in matching.ListMatchRunsInput) ([]model.MatchRun, paginator.Paginator, error) {
	f.gotRuns = in
	runs := []model.MatchRun{{
		ID:         "run-1",
		CampaignID: in.CampaignID,
		Trigger:    model.TriggerEvent,
		Results:    []model.MatchResult{{InfluencerID: "inf-1", TotalScore: 90}},
		CreatedAt:  time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}}
	return runs, paginator.Paginator{Total: 1, Count: 1, PerPage: in.Paginate.Limit, CurrentPage: in.Paginate.Page}, f.err
}

func (f *fakeUseCase) ExportShortlist(_ context.Context, _ model.Scope, in matching.ExportShortlistInput) (matching.ExportShortlistOutput, error) {
	if f.err != nil {
		return matching.ExportShortlistOutput{}, f.err
	}
	return matching.ExportShortlistOutput{ObjectName: "shortlists/" + in.CampaignID + "/x.json", URL: "http://minio/x", Count: in.Limit}, nil
}

func (f *fakeUseCase) RecomputeCampaign(_ context.Context, in matching.RecomputeCampaignInput) (model.MatchRun, error) {
	f.gotRecompute = in
	if f.err != nil {
		return model.MatchRun{}, f.err
	}
	return model.MatchRun{ID: "run-2", CampaignID: in.CampaignID, Results: make([]model.MatchResult, 3)}, nil
}

func newTestRouter(uc matching.UseCase, sc model.Scope) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(log.NewNop(), uc, nil).(*handler)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		ctx := scope.SetScopeToContext(c.Request.Context(), sc)
		ctx = locale.SetLocaleToContext(ctx, locale.ParseLang(c.GetHeader("lang")))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})
	r.GET("/campaigns/:campaign_id/matches", h.RecommendInfluencers)
	r.GET("/campaigns/:campaign_id/matches/:influencer_id", h.ScoreCandidate)
	r.POST("/campaigns/:campaign_id/matches/export", h.ExportShortlist)
	r.GET("/campaigns/:campaign_id/runs", h.ListMatchRuns)
	r.POST("/matching/score", h.ScoreAdHoc)
	r.POST("/internal/campaigns/:campaign_id/recompute", h.RecomputeCampaign)
	return r
}

type testResp struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func do(t *testing.T, r *gin.Engine, method, target, body string, headers map[string]string) (*httptest.ResponseRecorder, testResp) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp testResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v (body %s)", err, w.Body.String())
	}
	return w, resp
}

func TestRecommendInfluencers(t *testing.T) {
	brand := model.Scope{UserID: "u-brand", Role: model.RoleBrand}

	t.Run("binds query and translates reasons", func(t *testing.T) {
		uc := &fakeUseCase{scores: []engine.MatchingScore{{
			CandidateID: "inf-1",
			TotalScore:  98,
			Breakdown:   engine.Breakdown{Content: 100, Audience: 100},
			Reasons:     []string{engine.ReasonContent, "custom"},
		}}}
		r := newTestRouter(uc, brand)

		w, resp := do(t, r, http.MethodGet, "/campaigns/camp-1/matches?limit=5&platform=instagram&min_followers=1000&language=Arabic", "", map[string]string{"lang": "ko"})
		if w.Code != http.StatusOK {
			t.Fatalf("status mismatch: got %d, want %d", w.Code, http.StatusOK)
		}

		want := matching.RecommendInfluencersInput{
			CampaignID: "camp-1",
			Limit:      5,
			Filters:    matching.CandidateFilters{Platform: "instagram", MinFollowers: 1000, Language: "Arabic"},
		}
		if uc.gotInfluence != want {
			t.Errorf("input mismatch: got %+v, want %+v", uc.gotInfluence, want)
		}
		if uc.gotScope != brand {
			t.Errorf("scope mismatch: got %+v, want %+v", uc.gotScope, brand)
		}

		var data recommendInfluencersResp
		if err := json.Unmarshal(resp.Data, &data); err != nil {
			t.Fatalf("decode data: %v", err)
		}
		if len(data.Matches) != 1 {
			t.Fatalf("matches mismatch: got %d, want 1", len(data.Matches))
		}
		m := data.Matches[0]
		if m.TotalScore != 98 || m.Breakdown.ContentSimilarity != 100 {
			t.Errorf("match mismatch: got %+v", m)
		}
		if got, want := m.Reasons[0], reasonCatalog[engine.ReasonContent][locale.KO]; got != want {
			t.Errorf("reason mismatch: got %q, want %q", got, want)
		}
		if m.Reasons[1] != "custom" {
			t.Errorf("unknown reason should pass through: got %q", m.Reasons[1])
		}
	})

	t.Run("bad limit", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{}, brand)
		w, _ := do(t, r, http.MethodGet, "/campaigns/camp-1/matches?limit=abc", "", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status mismatch: got %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	errCases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", matching.ErrCampaignNotFound, http.StatusNotFound},
		{"forbidden", matching.ErrForbidden, http.StatusForbidden},
		{"invalid budget", matching.ErrInvalidBudget, http.StatusBadRequest},
		{"invalid input", matching.ErrInvalidInput, http.StatusBadRequest},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&fakeUseCase{err: tc.err}, brand)
			w, _ := do(t, r, http.MethodGet, "/campaigns/camp-1/matches", "", nil)
			if w.Code != tc.want {
				t.Errorf("status mismatch: got %d, want %d", w.Code, tc.want)
			}
		})
	}
}

func TestScoreCandidate(t *testing.T) {
	r := newTestRouter(&fakeUseCase{}, model.Scope{Role: model.RoleAdmin})

	w, resp := do(t, r, http.MethodGet, "/campaigns/camp-1/matches/inf-9", "", map[string]string{"lang": "ar"})
	if w.Code != http.StatusOK {
		t.Fatalf("status mismatch: got %d, want %d", w.Code, http.StatusOK)
	}

	var data matchResp
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.CandidateID != "inf-9" || data.TotalScore != 25 {
		t.Errorf("match mismatch: got %+v", data)
	}
	if got, want := data.Reasons[0], reasonCatalog[engine.ReasonFallback][locale.AR]; got != want {
		t.Errorf("reason mismatch: got %q, want %q", got, want)
	}
}

func TestScoreAdHoc(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		uc := &fakeUseCase{scores: []engine.MatchingScore{{CandidateID: "a", TotalScore: 70, Reasons: []string{engine.ReasonLanguage}}}}
		r := newTestRouter(uc, model.Scope{})

		body := `{"campaign":{"id":"c","category":"beauty","budget":{"min":100,"max":500}},"candidates":[{"id":"a","expertise":["beauty"]}],"limit":3}`
		w, resp := do(t, r, http.MethodPost, "/matching/score", body, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status mismatch: got %d, want %d", w.Code, http.StatusOK)
		}
		if uc.gotAdHoc.Campaign.Category != "beauty" || uc.gotAdHoc.Campaign.Budget.Max != 500 {
			t.Errorf("campaign mismatch: got %+v", uc.gotAdHoc.Campaign)
		}
		if len(uc.gotAdHoc.Candidates) != 1 || uc.gotAdHoc.Limit != 3 {
			t.Errorf("input mismatch: got %+v", uc.gotAdHoc)
		}

		var data scoreAdHocResp
		if err := json.Unmarshal(resp.Data, &data); err != nil {
			t.Fatalf("decode data: %v", err)
		}
		if len(data.Matches) != 1 || data.Matches[0].Reasons[0] != engine.ReasonLanguage {
			t.Errorf("matches mismatch: got %+v", data.Matches)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{}, model.Scope{})
		w, _ := do(t, r, http.MethodPost, "/matching/score", `{"campaign":`, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status mismatch: got %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("too many candidates", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{err: matching.ErrTooManyCandidates}, model.Scope{})
		w, _ := do(t, r, http.MethodPost, "/matching/score", `{"campaign":{"id":"c"},"candidates":[]}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status mismatch: got %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestListMatchRuns(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc, model.Scope{Role: model.RoleAdmin})

	w, resp := do(t, r, http.MethodGet, "/campaigns/camp-1/runs?page=2&limit=5", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status mismatch: got %d, want %d", w.Code, http.StatusOK)
	}
	if uc.gotRuns.CampaignID != "camp-1" || uc.gotRuns.Paginate.Page != 2 || uc.gotRuns.Paginate.Limit != 5 {
		t.Errorf("input mismatch: got %+v", uc.gotRuns)
	}

	var data listMatchRunsResp
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(data.Runs) != 1 || data.Runs[0].Trigger != model.TriggerEvent {
		t.Errorf("runs mismatch: got %+v", data.Runs)
	}
}

func TestExportShortlist(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{}, model.Scope{Role: model.RoleAdmin})
		w, _ := do(t, r, http.MethodPost, "/campaigns/camp-1/matches/export", "", nil)
		if w.Code != http.StatusOK {
			t.Errorf("status mismatch: got %d, want %d", w.Code, http.StatusOK)
		}
	})

	t.Run("with limit", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{}, model.Scope{Role: model.RoleAdmin})
		w, resp := do(t, r, http.MethodPost, "/campaigns/camp-1/matches/export", `{"limit":7}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status mismatch: got %d, want %d", w.Code, http.StatusOK)
		}
		var data exportShortlistResp
		if err := json.Unmarshal(resp.Data, &data); err != nil {
			t.Fatalf("decode data: %v", err)
		}
		if data.Count != 7 || data.ObjectName != "shortlists/camp-1/x.json" {
			t.Errorf("export mismatch: got %+v", data)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{err: matching.ErrExportFailed}, model.Scope{Role: model.RoleAdmin})
		w, _ := do(t, r, http.MethodPost, "/campaigns/camp-1/matches/export", "", nil)
		if w.Code != http.StatusInternalServerError {
			t.Errorf("status mismatch: got %d, want %d", w.Code, http.StatusInternalServerError)
		}
	})
}

func TestRecomputeCampaign(t *testing.T) {
	t.Run("manual trigger", func(t *testing.T) {
		uc := &fakeUseCase{}
		r := newTestRouter(uc, model.Scope{})
		w, resp := do(t, r, http.MethodPost, "/internal/campaigns/camp-1/recompute", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status mismatch: got %d, want %d", w.Code, http.StatusOK)
		}
		if uc.gotRecompute.Trigger != model.TriggerManual {
			t.Errorf("trigger mismatch: got %q, want %q", uc.gotRecompute.Trigger, model.TriggerManual)
		}
		var data recomputeCampaignResp
		if err := json.Unmarshal(resp.Data, &data); err != nil {
			t.Fatalf("decode data: %v", err)
		}
		if data.Ranked != 3 || data.RunID != "run-2" {
			t.Errorf("recompute mismatch: got %+v", data)
		}
	})

	t.Run("closed campaign", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{err: matching.ErrCampaignNotOpen}, model.Scope{})
		w, _ := do(t, r, http.MethodPost, "/internal/campaigns/camp-1/recompute", "", nil)
		if w.Code != http.StatusConflict {
			t.Errorf("status mismatch: got %d, want %d", w.Code, http.StatusConflict)
		}
	})
}
