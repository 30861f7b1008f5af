package github_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/tagsync/pkg/domain/model"
	"github.com/m-mizutani/tagsync/pkg/domain/types"
	githubinfra "github.com/m-mizutani/tagsync/pkg/infra/github"
)

func validToken() model.Token {
	return model.Token("ghp_" + strings.Repeat("a", 36))
}

func TestNew_InvalidToken(t *testing.T) {
	_, err := githubinfra.New(model.Token("not-a-token"))
	gt.Error(t, err)
	gt.Value(t, goerr.HasTag(err, types.TagInvalidInput)).Equal(true)
}

func TestClient_LatestTag(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gt.Value(t, r.Method).Equal(http.MethodGet)
		gt.String(t, r.URL.Path).Contains("/repos/pi-hole/docker-pi-hole/git/matching-refs/tags")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		// Chronological order, oldest first
		_, _ = w.Write([]byte(`[
			{"ref": "refs/tags/2024.03"},
			{"ref": "refs/tags/2024.04"},
			{"ref": "refs/tags/2024.05"}
		]`))
	}))
	defer server.Close()

	client, err := githubinfra.New(validToken(), githubinfra.WithBaseURL(server.URL))
	gt.NoError(t, err)

	tag, err := client.LatestTag(t.Context(), "pi-hole/docker-pi-hole")
	gt.NoError(t, err)
	gt.Value(t, tag).Equal(model.Tag("2024.05"))
	gt.Value(t, gotAuth).Equal("Bearer " + string(validToken()))
}

func TestClient_LatestTag_NoTags(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client, err := githubinfra.New(validToken(), githubinfra.WithBaseURL(server.URL))
	gt.NoError(t, err)

	_, err = client.LatestTag(t.Context(), "pi-hole/docker-pi-hole")
	gt.Error(t, err)
	gt.Value(t, goerr.HasTag(err, types.TagNoTags)).Equal(true)
}

func TestClient_LatestTag_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := githubinfra.New(validToken(), githubinfra.WithBaseURL(server.URL))
	gt.NoError(t, err)

	_, err = client.LatestTag(t.Context(), "pi-hole/docker-pi-hole")
	gt.Error(t, err)
	gt.Value(t, goerr.HasTag(err, types.TagTransport)).Equal(true)
}

func TestClient_CreateRelease(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Value(t, r.Method).Equal(http.MethodPost)
		gt.String(t, r.URL.Path).Contains("/repos/downstream/tool/releases")

		var body map[string]any
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gt.Value(t, body["tag_name"]).Equal("2024.06")
		gt.Value(t, body["name"]).Equal("2024.06")
		gt.Value(t, body["target_commitish"]).Equal("main")
		gt.String(t, body["body"].(string)).Contains("upstream changes")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"id": 123,
			"tag_name": "2024.06",
			"name": "2024.06",
			"html_url": "https://github.com/downstream/tool/releases/tag/2024.06"
		}`))
	}))
	defer server.Close()

	client, err := githubinfra.New(validToken(), githubinfra.WithBaseURL(server.URL))
	gt.NoError(t, err)

	release, err := client.CreateRelease(t.Context(), &model.ReleaseRequest{
		Repo:         "downstream/tool",
		Tag:          "2024.06",
		Body:         "It mirrors the upstream changes from https://github.com/upstream/tool/releases/tag/2024.06",
		TargetBranch: "main",
	})
	gt.NoError(t, err)
	gt.Value(t, release).NotNil()
	gt.Value(t, release.ID).Equal(int64(123))
	gt.Value(t, release.TagName).Equal(model.Tag("2024.06"))
	gt.String(t, release.HTMLURL).Contains("/releases/tag/2024.06")
}

func TestClient_CreateRelease_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{
			"message": "Validation Failed",
			"errors": [{"resource": "Release", "code": "already_exists", "field": "tag_name"}]
		}`))
	}))
	defer server.Close()

	client, err := githubinfra.New(validToken(), githubinfra.WithBaseURL(server.URL))
	gt.NoError(t, err)

	release, err := client.CreateRelease(t.Context(), &model.ReleaseRequest{
		Repo:         "downstream/tool",
		Tag:          "2024.06",
		Body:         "body",
		TargetBranch: "main",
	})
	gt.Error(t, err)
	gt.Value(t, release).Nil()
	gt.Value(t, goerr.HasTag(err, types.TagReleaseRejected)).Equal(true)
	// Status and provider message are preserved for diagnostics
	gt.String(t, err.Error()).Contains("422")
	gt.String(t, err.Error()).Contains("Validation Failed")
}
