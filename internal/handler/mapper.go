package handler

import (
	"time"

	"github.com/bagdasarian/league-manager/internal/domain"
)

func domainMemberToHTTP(member *domain.TeamMember) MemberResponse {
	return MemberResponse{
		OID:        member.OID(),
		MemberName: member.Name,
		Email:      member.Email,
	}
}

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	members := make([]MemberResponse, 0)
	for _, member := range team.Members() {
		members = append(members, domainMemberToHTTP(member))
	}

	return TeamResponse{
		OID:      team.OID(),
		TeamName: team.Name,
		Members:  members,
	}
}

func domainCompetitionToHTTP(competition *domain.Competition) CompetitionResponse {
	teams := make([]string, 0)
	for _, team := range competition.TeamsCompeting() {
		if team == nil {
			continue
		}
		teams = append(teams, team.Name)
	}

	var dateTime *string
	if competition.DateTime != nil {
		dateTimeStr := competition.DateTime.Format(time.RFC3339)
		dateTime = &dateTimeStr
	}

	return CompetitionResponse{
		OID:      competition.OID(),
		Teams:    teams,
		Location: competition.Location,
		DateTime: dateTime,
		Summary:  competition.String(),
	}
}

func domainLeagueToHTTP(league *domain.League) LeagueResponse {
	teams := make([]TeamResponse, 0)
	for _, team := range league.Teams() {
		teams = append(teams, domainTeamToHTTP(team))
	}
	competitions := make([]CompetitionResponse, 0)
	for _, competition := range league.Competitions() {
		competitions = append(competitions, domainCompetitionToHTTP(competition))
	}

	return LeagueResponse{
		OID:          league.OID(),
		LeagueName:   league.Name,
		Teams:        teams,
		Competitions: competitions,
	}
}

func domainLeaguesToHTTP(leagues []*domain.League) ListLeaguesResponse {
	result := make([]LeagueSummaryResponse, 0, len(leagues))
	for _, league := range leagues {
		result = append(result, LeagueSummaryResponse{
			OID:        league.OID(),
			LeagueName: league.Name,
			TeamCount:  len(league.Teams()),
			Summary:    league.String(),
		})
	}
	return ListLeaguesResponse{Leagues: result}
}

func httpDateTimeToDomain(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		return nil, domain.NewBadRequestError("date_time must be RFC3339: " + err.Error())
	}
	return &parsed, nil
}
