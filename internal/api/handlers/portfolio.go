package handlers

import (
	"net/http"

	"github.com/gujjar-pranav/portfolio/internal/api"
	"github.com/gujjar-pranav/portfolio/internal/content"
	"github.com/gujjar-pranav/portfolio/internal/domain"
	"github.com/gujjar-pranav/portfolio/internal/knowledge"
)

// PortfolioHandler serves the static site content: profile links,
// project cards, and the resume-style sections. Everything here is
// compiled in; there is no storage behind it.
type PortfolioHandler struct {
	kb *knowledge.Base
}

func NewPortfolioHandler(kb *knowledge.Base) *PortfolioHandler {
	return &PortfolioHandler{kb: kb}
}

type ProfileResponse struct {
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	Resume   string `json:"resume"`
	WhatsApp string `json:"whatsapp"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

type ProjectResponse struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Tags         []string `json:"tags"`
	Code         string   `json:"code,omitempty"`
	Demo         string   `json:"demo,omitempty"`
	Docs         string   `json:"docs,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`
	Architecture []string `json:"architecture,omitempty"`
	CoverImage   string   `json:"cover_image,omitempty"`
	Screenshots  []string `json:"screenshots,omitempty"`
}

type ExperienceResponse struct {
	Role    string   `json:"role"`
	Company string   `json:"company"`
	Period  string   `json:"period"`
	Bullets []string `json:"bullets"`
}

type EducationResponse struct {
	Degree string   `json:"degree"`
	School string   `json:"school"`
	Period string   `json:"period"`
	Notes  []string `json:"notes,omitempty"`
}

type CertGroupResponse struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

type SkillGroupResponse struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Items    []string `json:"items"`
}

func (h *PortfolioHandler) Profile(w http.ResponseWriter, r *http.Request) {
	links := h.kb.Links()
	api.Success(w, http.StatusOK, ProfileResponse{
		GitHub:   links.GitHubProfile,
		LinkedIn: links.LinkedIn,
		Resume:   links.ResumePDF,
		WhatsApp: links.WhatsApp,
		Phone:    links.Phone,
		Email:    links.Email,
	})
}

func (h *PortfolioHandler) Projects(w http.ResponseWriter, r *http.Request) {
	projects := content.Projects()
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, projectToResponse(p))
	}
	api.Success(w, http.StatusOK, out)
}

func projectToResponse(p domain.Project) ProjectResponse {
	return ProjectResponse{
		Title:        p.Title,
		Description:  p.Description,
		Tags:         p.Tags,
		Code:         p.Links.Code,
		Demo:         p.Links.Demo,
		Docs:         p.Links.Docs,
		Highlights:   p.Highlights,
		Architecture: p.Architecture,
		CoverImage:   p.CoverImage,
		Screenshots:  p.Screenshots,
	}
}

func (h *PortfolioHandler) Experience(w http.ResponseWriter, r *http.Request) {
	entries := content.Experience()
	out := make([]ExperienceResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ExperienceResponse{
			Role:    e.Role,
			Company: e.Company,
			Period:  e.Period,
			Bullets: e.Bullets,
		})
	}
	api.Success(w, http.StatusOK, out)
}

func (h *PortfolioHandler) Education(w http.ResponseWriter, r *http.Request) {
	entries := content.Education()
	out := make([]EducationResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, EducationResponse{
			Degree: e.Degree,
			School: e.School,
			Period: e.Period,
			Notes:  e.Notes,
		})
	}
	api.Success(w, http.StatusOK, out)
}

func (h *PortfolioHandler) Certifications(w http.ResponseWriter, r *http.Request) {
	groups := content.Certifications()
	out := make([]CertGroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, CertGroupResponse{Title: g.Title, Items: g.Items})
	}
	api.Success(w, http.StatusOK, out)
}

func (h *PortfolioHandler) Skills(w http.ResponseWriter, r *http.Request) {
	groups := content.Skills()
	out := make([]SkillGroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, SkillGroupResponse{Title: g.Title, Subtitle: g.Subtitle, Items: g.Items})
	}
	api.Success(w, http.StatusOK, out)
}
