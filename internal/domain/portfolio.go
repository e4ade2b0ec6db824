package domain

// ProjectLinks holds the outbound links for a single project card
type ProjectLinks struct {
	Code string
	Demo string
	Docs string
}

// Project represents one portfolio project card
type Project struct {
	Title        string
	Description  string
	Tags         []string
	Links        ProjectLinks
	Highlights   []string
	Architecture []string
	CoverImage   string
	Screenshots  []string
}

// Experience represents one role on the experience timeline
type Experience struct {
	Role    string
	Company string
	Period  string
	Bullets []string
}

// Education represents one degree entry
type Education struct {
	Degree string
	School string
	Period string
	Notes  []string
}

// SkillGroup is a titled group of related skills
type SkillGroup struct {
	Title    string
	Subtitle string
	Items    []string
}

// CertGroup is a titled group of certifications and courses
type CertGroup struct {
	Title string
	Items []string
}
