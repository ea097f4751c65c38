package response

import (
	"time"

	"github.com/brawlops/brawlsquad/internal/model"
	"github.com/brawlops/brawlsquad/internal/services/auth"
)

// Passport is the response for authentication endpoints
type Passport struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

// PassportFromModel converts an auth.Passport to a response Passport
func PassportFromModel(p *auth.Passport) Passport {
	return Passport{
		AccessToken: p.AccessToken,
		TokenType:   p.TokenType,
		ExpiresIn:   p.ExpiresIn,
		DisplayName: p.DisplayName,
		AvatarURL:   p.AvatarURL,
	}
}

// Mission represents a mission in API responses
type Mission struct {
	ID          string    `json:"id"`
	ChiefID     string    `json:"chief_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MissionFromModel converts a model.Mission to a response Mission
func MissionFromModel(m *model.Mission) Mission {
	return Mission{
		ID:          string(m.ID),
		ChiefID:     string(m.ChiefID),
		Name:        m.Name,
		Description: m.Description,
		Status:      string(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// MissionView is a mission with its crew headcount
type MissionView struct {
	Mission
	CrewCount int `json:"crew_count"`
}

// MissionViewFromModel converts a model.MissionView
func MissionViewFromModel(v *model.MissionView) MissionView {
	return MissionView{
		Mission:   MissionFromModel(v.Mission),
		CrewCount: v.CrewCount,
	}
}

// MissionViewsFromModel converts a slice of model.MissionView
func MissionViewsFromModel(views []*model.MissionView) []MissionView {
	out := make([]MissionView, len(views))
	for i, v := range views {
		out[i] = MissionViewFromModel(v)
	}
	return out
}

// MissionsFromModel converts a slice of model.Mission
func MissionsFromModel(missions []*model.Mission) []Mission {
	out := make([]Mission, len(missions))
	for i, m := range missions {
		out[i] = MissionFromModel(m)
	}
	return out
}

// Transition is the response after a mission status change
type Transition struct {
	MissionID string `json:"mission_id"`
}

// Avatar is the response after an avatar upload
type Avatar struct {
	URL string `json:"url"`
}
