package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"matching-srv/internal/matching/engine"
	"matching-srv/pkg/encrypter"
	pkgJWT "matching-srv/pkg/jwt"
)

const testCampaign = `{
  "id": "c1",
  "category": "beauty",
  "target_languages": ["ko", "en"],
  "target_regions": ["Seoul"],
  "min_followers": 10000,
  "budget": {"min": 500, "max": 5000, "currency": "USD"}
}`

const testInfluencers = `[
  {
    "id": "i1",
    "expertise": ["beauty"],
    "languages": ["ko", "en"],
    "location": "Seoul",
    "social_accounts": [{"platform": "instagram", "followers": 30000}],
    "stats": {"total_campaigns": 12, "completed_campaigns": 12, "avg_rating": 4.5, "completion_rate": 1}
  },
  {
    "id": "i2",
    "expertise": ["food"],
    "languages": ["ar"],
    "location": "Dubai",
    "social_accounts": [{"platform": "youtube", "followers": 2000}]
  }
]`

const testSeed = `{
  "campaigns": [
    {"id": "c1", "brand_id": "b1", "title": "Glow", "category": "beauty",
     "target_languages": ["ko", "en"], "target_regions": ["Seoul"],
     "min_followers": 10000, "budget_min": 500, "budget_max": 5000, "currency": "USD"},
    {"id": "c2", "brand_id": "b1", "title": "Old", "status": "closed", "category": "food"}
  ],
  "influencers": [
    {"id": "i1", "expertise": ["beauty"], "languages": ["ko", "en"], "location": "Seoul",
     "social_accounts": [{"platform": "instagram", "handle": "@mina", "followers": 30000}],
     "stats": {"total_campaigns": 12, "completed_campaigns": 12, "avg_rating": 4.5, "completion_rate": 1}},
    {"id": "i2", "expertise": ["food"], "languages": ["ar"], "location": "Dubai",
     "social_accounts": [{"platform": "youtube", "followers": 2000}]}
  ]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestScoreCommand(t *testing.T) {
	dir := t.TempDir()
	campaign := writeFile(t, dir, "campaign.json", testCampaign)
	candidates := writeFile(t, dir, "influencers.json", testInfluencers)

	t.Run("json output keeps only candidates above threshold", func(t *testing.T) {
		out, err := run(t, "score", "--campaign", campaign, "--candidates", candidates, "-o", "json")
		if err != nil {
			t.Fatalf("score: %v", err)
		}
		var scores []engine.MatchingScore
		if err := json.Unmarshal([]byte(out), &scores); err != nil {
			t.Fatalf("decode output: %v\n%s", err, out)
		}
		if len(scores) != 1 {
			t.Fatalf("len mismatch: got %d, want 1", len(scores))
		}
		if scores[0].CandidateID != "i1" {
			t.Errorf("CandidateID mismatch: got %s, want i1", scores[0].CandidateID)
		}
		if scores[0].Breakdown.Content != 100 {
			t.Errorf("Content mismatch: got %v, want 100", scores[0].Breakdown.Content)
		}
	})

	t.Run("table output", func(t *testing.T) {
		out, err := run(t, "score", "--campaign", campaign, "--candidates", candidates)
		if err != nil {
			t.Fatalf("score: %v", err)
		}
		if !strings.Contains(out, "CANDIDATE") || !strings.Contains(out, "i1") {
			t.Errorf("unexpected table:\n%s", out)
		}
		if strings.Contains(out, "i2") {
			t.Errorf("i2 should be filtered out:\n%s", out)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := run(t, "score", "--campaign", filepath.Join(dir, "nope.json"), "--candidates", candidates); err == nil {
			t.Error("expected error for missing campaign file")
		}
	})

	t.Run("invalid budget rejected", func(t *testing.T) {
		bad := writeFile(t, dir, "bad.json", `{"id":"c9","category":"beauty","budget":{"min":900,"max":100}}`)
		if _, err := run(t, "score", "--campaign", bad, "--candidates", candidates); err == nil {
			t.Error("expected error for min > max budget")
		}
	})

	t.Run("unknown output format", func(t *testing.T) {
		if _, err := run(t, "score", "--campaign", campaign, "--candidates", candidates, "-o", "xml"); err == nil {
			t.Error("expected error for unknown output format")
		}
	})
}

func TestStoreCommands(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "matching.db")
	seed := writeFile(t, dir, "seed.json", testSeed)

	out, err := run(t, "--sqlite", db, "import", seed)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !strings.Contains(out, "Imported 2 campaigns and 2 influencers") {
		t.Errorf("import output mismatch: got %q", out)
	}

	t.Run("recommend", func(t *testing.T) {
		out, err := run(t, "--sqlite", db, "recommend", "c1", "-o", "json")
		if err != nil {
			t.Fatalf("recommend: %v", err)
		}
		var scores []engine.MatchingScore
		if err := json.Unmarshal([]byte(out), &scores); err != nil {
			t.Fatalf("decode output: %v\n%s", err, out)
		}
		if len(scores) != 1 || scores[0].CandidateID != "i1" {
			t.Errorf("matches mismatch: got %+v, want [i1]", scores)
		}
	})

	t.Run("recommend with platform filter", func(t *testing.T) {
		out, err := run(t, "--sqlite", db, "recommend", "c1", "--platform", "tiktok")
		if err != nil {
			t.Fatalf("recommend: %v", err)
		}
		if !strings.Contains(out, "No matches") {
			t.Errorf("expected no matches, got:\n%s", out)
		}
	})

	t.Run("single pair below threshold", func(t *testing.T) {
		out, err := run(t, "--sqlite", db, "recommend", "c1", "--influencer", "i2", "-o", "json")
		if err != nil {
			t.Fatalf("recommend --influencer: %v", err)
		}
		var score engine.MatchingScore
		if err := json.Unmarshal([]byte(out), &score); err != nil {
			t.Fatalf("decode output: %v\n%s", err, out)
		}
		if score.CandidateID != "i2" || score.TotalScore > engine.MinTotalScore {
			t.Errorf("score mismatch: got %s/%d", score.CandidateID, score.TotalScore)
		}
	})

	t.Run("recommend unknown campaign", func(t *testing.T) {
		if _, err := run(t, "--sqlite", db, "recommend", "missing"); err == nil {
			t.Error("expected error for unknown campaign")
		}
	})

	t.Run("campaigns for influencer", func(t *testing.T) {
		out, err := run(t, "--sqlite", db, "campaigns", "i1", "-o", "json")
		if err != nil {
			t.Fatalf("campaigns: %v", err)
		}
		var scores []engine.MatchingScore
		if err := json.Unmarshal([]byte(out), &scores); err != nil {
			t.Fatalf("decode output: %v\n%s", err, out)
		}
		if len(scores) != 1 || scores[0].CandidateID != "c1" {
			t.Errorf("matches mismatch: got %+v, want [c1]", scores)
		}
	})

	t.Run("recompute then list runs", func(t *testing.T) {
		if _, err := run(t, "--sqlite", db, "recompute", "c1"); err != nil {
			t.Fatalf("recompute: %v", err)
		}
		out, err := run(t, "--sqlite", db, "runs", "c1")
		if err != nil {
			t.Fatalf("runs: %v", err)
		}
		if !strings.Contains(out, "manual") || !strings.Contains(out, "i1") {
			t.Errorf("runs table mismatch:\n%s", out)
		}
	})

	t.Run("recompute closed campaign", func(t *testing.T) {
		if _, err := run(t, "--sqlite", db, "recompute", "c2"); err == nil {
			t.Error("expected error for closed campaign")
		}
	})

	t.Run("recompute all", func(t *testing.T) {
		out, err := run(t, "--sqlite", db, "recompute", "--all", "-o", "json")
		if err != nil {
			t.Fatalf("recompute --all: %v", err)
		}
		var summary map[string]string
		if err := json.Unmarshal([]byte(out), &summary); err != nil {
			t.Fatalf("decode output: %v\n%s", err, out)
		}
		if summary["campaigns"] != "1" || summary["succeeded"] != "1" {
			t.Errorf("summary mismatch: got %v", summary)
		}
	})

	t.Run("recompute needs exactly one target", func(t *testing.T) {
		if _, err := run(t, "--sqlite", db, "recompute"); err == nil {
			t.Error("expected error without campaign or --all")
		}
		if _, err := run(t, "--sqlite", db, "recompute", "c1", "--all"); err == nil {
			t.Error("expected error with both campaign and --all")
		}
	})
}

func TestImportRequiresSQLite(t *testing.T) {
	seed := writeFile(t, t.TempDir(), "seed.json", testSeed)
	if _, err := run(t, "--driver", "postgres", "import", seed); err == nil {
		t.Error("expected error for postgres import")
	}
}

func TestTokenCommand(t *testing.T) {
	const secret = "test-secret-key-with-enough-length"

	out, err := run(t, "token", "--secret", secret, "--user-id", "u-1", "--role", "brand", "--issuer", "test")
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	manager, err := pkgJWT.New(pkgJWT.Config{SecretKey: secret, Issuer: "test"})
	if err != nil {
		t.Fatalf("jwt.New: %v", err)
	}
	payload, err := manager.Verify(strings.TrimSpace(out))
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if payload.UserID != "u-1" || payload.Role != "brand" {
		t.Errorf("payload mismatch: got %+v", payload)
	}

	if _, err := run(t, "token", "--secret", secret, "--user-id", "u-1", "--role", "root"); err == nil {
		t.Error("expected error for unknown role")
	}
}

func TestServiceKeyCommand(t *testing.T) {
	const key = "0123456789abcdef0123456789abcdef"

	out, err := run(t, "service-key", "--service", "campaign-srv", "--key", "s3cret", "--encrypter-key", key, "-o", "json")
	if err != nil {
		t.Fatalf("service-key: %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}

	enc, err := encrypter.New(key)
	if err != nil {
		t.Fatalf("encrypter.New: %v", err)
	}
	plain, err := enc.Decrypt(got["header"])
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if plain != "campaign-srv:s3cret" {
		t.Errorf("header mismatch: got %q, want %q", plain, "campaign-srv:s3cret")
	}
	if !enc.CompareSecret("s3cret", got["config_hash"]) {
		t.Error("config hash does not match key")
	}
	if got["config_entry"] != "internal.service_keys.campaign-srv" {
		t.Errorf("config_entry mismatch: got %s", got["config_entry"])
	}
}
