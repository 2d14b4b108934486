package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type LeagueRequest struct {
	LeagueName string `json:"league_name"`
}

type TeamRequest struct {
	LeagueName string `json:"league_name"`
	TeamName   string `json:"team_name"`
}

type MemberRequest struct {
	LeagueName string `json:"league_name"`
	TeamName   string `json:"team_name"`
	MemberName string `json:"member_name"`
	Email      string `json:"email"`
}

type UpdateMemberRequest struct {
	LeagueName string `json:"league_name"`
	TeamName   string `json:"team_name"`
	MemberOID  int    `json:"member_oid"`
	MemberName string `json:"member_name"`
	Email      string `json:"email"`
}

// CompetitionRequest.DateTime в формате RFC3339
type CompetitionRequest struct {
	LeagueName string   `json:"league_name"`
	Teams      []string `json:"teams"`
	Location   string   `json:"location"`
	DateTime   *string  `json:"date_time,omitempty"`
}

type CompetitionRefRequest struct {
	LeagueName     string `json:"league_name"`
	CompetitionOID int    `json:"competition_oid"`
}

type TeamEmailRequest struct {
	LeagueName string `json:"league_name"`
	TeamName   string `json:"team_name"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
}

type CompetitionEmailRequest struct {
	LeagueName     string `json:"league_name"`
	CompetitionOID int    `json:"competition_oid"`
	Subject        string `json:"subject"`
	Message        string `json:"message"`
}

type ImportRequest struct {
	LeagueName     string `json:"league_name"`
	Path           string `json:"path"`
	KnownTeamsOnly bool   `json:"known_teams_only"`
}

type ExportRequest struct {
	LeagueName string `json:"league_name"`
	TeamName   string `json:"team_name,omitempty"`
	Path       string `json:"path"`
}

type MemberResponse struct {
	OID        int    `json:"oid"`
	MemberName string `json:"member_name"`
	Email      string `json:"email"`
}

type TeamResponse struct {
	OID      int              `json:"oid"`
	TeamName string           `json:"team_name"`
	Members  []MemberResponse `json:"members"`
}

type CompetitionResponse struct {
	OID      int      `json:"oid"`
	Teams    []string `json:"teams"`
	Location string   `json:"location"`
	DateTime *string  `json:"date_time,omitempty"`
	Summary  string   `json:"summary"`
}

type LeagueResponse struct {
	OID          int                   `json:"oid"`
	LeagueName   string                `json:"league_name"`
	Teams        []TeamResponse        `json:"teams"`
	Competitions []CompetitionResponse `json:"competitions"`
}

type LeagueSummaryResponse struct {
	OID        int    `json:"oid"`
	LeagueName string `json:"league_name"`
	TeamCount  int    `json:"team_count"`
	Summary    string `json:"summary"`
}

type ListLeaguesResponse struct {
	Leagues []LeagueSummaryResponse `json:"leagues"`
}
