package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gujjar-pranav/portfolio/internal/knowledge"
)

func TestPortfolioHandler_Profile(t *testing.T) {
	handler := NewPortfolioHandler(knowledge.Default())

	req := httptest.NewRequest(http.MethodGet, "/portfolio/profile", nil)
	w := httptest.NewRecorder()
	handler.Profile(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result struct {
		Data ProfileResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "https://github.com/Gujjar-Pranav", result.Data.GitHub)
	assert.NotEmpty(t, result.Data.LinkedIn)
	assert.NotEmpty(t, result.Data.Resume)
}

func TestPortfolioHandler_Projects(t *testing.T) {
	handler := NewPortfolioHandler(knowledge.Default())

	req := httptest.NewRequest(http.MethodGet, "/portfolio/projects", nil)
	w := httptest.NewRecorder()
	handler.Projects(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result struct {
		Data []ProjectResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.NotEmpty(t, result.Data)

	titles := make([]string, 0, len(result.Data))
	for _, p := range result.Data {
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Description)
		titles = append(titles, p.Title)
	}
	assert.Contains(t, titles, "ReviewSense AI")
}

func TestPortfolioHandler_Experience(t *testing.T) {
	handler := NewPortfolioHandler(knowledge.Default())

	req := httptest.NewRequest(http.MethodGet, "/portfolio/experience", nil)
	w := httptest.NewRecorder()
	handler.Experience(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result struct {
		Data []ExperienceResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.NotEmpty(t, result.Data)
	assert.NotEmpty(t, result.Data[0].Role)
	assert.NotEmpty(t, result.Data[0].Bullets)
}

func TestPortfolioHandler_Education(t *testing.T) {
	handler := NewPortfolioHandler(knowledge.Default())

	req := httptest.NewRequest(http.MethodGet, "/portfolio/education", nil)
	w := httptest.NewRecorder()
	handler.Education(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result struct {
		Data []EducationResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.NotEmpty(t, result.Data)
	assert.NotEmpty(t, result.Data[0].Degree)
}

func TestPortfolioHandler_Certifications(t *testing.T) {
	handler := NewPortfolioHandler(knowledge.Default())

	req := httptest.NewRequest(http.MethodGet, "/portfolio/certifications", nil)
	w := httptest.NewRecorder()
	handler.Certifications(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result struct {
		Data []CertGroupResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.NotEmpty(t, result.Data)
}

func TestPortfolioHandler_Skills(t *testing.T) {
	handler := NewPortfolioHandler(knowledge.Default())

	req := httptest.NewRequest(http.MethodGet, "/portfolio/skills", nil)
	w := httptest.NewRecorder()
	handler.Skills(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result struct {
		Data []SkillGroupResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.NotEmpty(t, result.Data)
	for _, g := range result.Data {
		assert.NotEmpty(t, g.Items)
	}
}
