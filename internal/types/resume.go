package types

// Resume is the structured resume document scored against a job posting.
type Resume struct {
	Title    string          `json:"title" validate:"max=300"`
	Summary  string          `json:"summary" validate:"max=5000"`
	Sections []ResumeSection `json:"sections" validate:"dive"`
}

// ResumeSection is a titled group of bullets.
type ResumeSection struct {
	Title   string         `json:"title" validate:"max=300"`
	Bullets []ResumeBullet `json:"bullets" validate:"dive"`
}

// ResumeBullet is a single bullet line with optional display parameters.
type ResumeBullet struct {
	Text   string        `json:"text" validate:"required,max=2000"`
	Params *BulletParams `json:"params,omitempty"`
}

// BulletParams carries per-bullet display flags. Visible is a pointer so that
// an absent flag means visible; only an explicit false hides a bullet.
type BulletParams struct {
	Visible *bool `json:"visible,omitempty"`
}

// IsVisible reports whether the bullet should contribute to matching.
func (b ResumeBullet) IsVisible() bool {
	if b.Params == nil || b.Params.Visible == nil {
		return true
	}
	return *b.Params.Visible
}
