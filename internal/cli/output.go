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
		data, _ := json.Marshal(map[string]string{"error": err.Error()})
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case MessageResult:
		fmt.Println(v.Message)
	case MeResult:
		o.printMeResult(v)
	case Leaderboard:
		o.printLeaderboard(v)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// MessageResult response type (matches API)
type MessageResult struct {
	Message string `json:"message"`
}

// MeResult response type
type MeResult struct {
	Username *string `json:"username"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	Username string `json:"username"`
	Score    int64  `json:"score"`
}

// Leaderboard response type
type Leaderboard []LeaderboardEntry

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printMeResult(m MeResult) {
	if m.Username == nil {
		fmt.Println("Not logged in")
		return
	}
	fmt.Printf("Logged in as: %s\n", *m.Username)
}

func (o *Output) printLeaderboard(lb Leaderboard) {
	if len(lb) == 0 {
		fmt.Println("No scores yet")
		return
	}

	for i, entry := range lb {
		fmt.Printf("%2d. %s - %d\n", i+1, entry.Username, entry.Score)
	}
}
