package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Passport:
		o.printPassport(v)
	case Mission:
		o.printMission(v)
	case MissionView:
		o.printMissionView(v)
	case []MissionView:
		o.printMissionViews(v)
	case []Mission:
		o.printMissions(v)
	case Avatar:
		o.printAvatar(v)
	case TransitionResult:
		o.printTransitionResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Passport response type (matches API)
type Passport struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

// Mission response type
type Mission struct {
	ID          string `json:"id"`
	ChiefID     string `json:"chief_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// MissionView is a mission with its crew headcount
type MissionView struct {
	Mission
	CrewCount int `json:"crew_count"`
}

// Avatar response type
type Avatar struct {
	URL string `json:"url"`
}

// TransitionResult response type
type TransitionResult struct {
	MissionID string `json:"mission_id"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPassport(p Passport) {
	fmt.Printf("Brawler: %s\n", p.DisplayName)
	if p.AvatarURL != "" {
		fmt.Printf("Avatar: %s\n", p.AvatarURL)
	}
	fmt.Printf("Token: %s %s (expires in %ds)\n", p.TokenType, p.AccessToken, p.ExpiresIn)
}

func (o *Output) printMission(m Mission) {
	fmt.Printf("Mission: %s (%s)\n", m.Name, m.ID)
	if m.Description != "" {
		fmt.Printf("Description: %s\n", m.Description)
	}
	fmt.Printf("Status: %s\n", m.Status)
	fmt.Printf("Chief: %s\n", m.ChiefID)
}

func (o *Output) printMissionView(v MissionView) {
	o.printMission(v.Mission)
	fmt.Printf("Crew: %d\n", v.CrewCount)
}

func (o *Output) printMissionViews(views []MissionView) {
	if len(views) == 0 {
		fmt.Println("No missions")
		return
	}
	for i, v := range views {
		if i > 0 {
			fmt.Println()
		}
		o.printMissionView(v)
	}
}

func (o *Output) printMissions(missions []Mission) {
	if len(missions) == 0 {
		fmt.Println("No missions")
		return
	}
	for _, m := range missions {
		fmt.Printf("%s  %-12s %s\n", m.ID, m.Status, m.Name)
	}
}

func (o *Output) printAvatar(a Avatar) {
	fmt.Printf("Avatar: %s\n", a.URL)
}

func (o *Output) printTransitionResult(t TransitionResult) {
	fmt.Printf("Mission updated: %s\n", t.MissionID)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
