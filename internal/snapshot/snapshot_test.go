package snapshot

import (
	"errors"
	"testing"
	"time"

	"github.com/bagdasarian/league-manager/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLeagues(t *testing.T) []*domain.League {
	t.Helper()

	league := domain.NewLeague(1, "AL")
	home := domain.NewTeam(1, "home")
	away := domain.NewTeam(2, "away")
	require.NoError(t, league.AddTeam(home))
	require.NoError(t, league.AddTeam(away))
	require.NoError(t, home.AddMember(domain.NewTeamMember(1, "Fred", "fred@x.org")))
	require.NoError(t, away.AddMember(domain.NewTeamMember(1, "Wilma", "")))

	when := time.Date(2024, time.March, 30, 18, 0, 0, 0, time.UTC)
	require.NoError(t, league.AddCompetition(domain.NewCompetition(7, []*domain.Team{home, away}, "Stadium", &when)))
	require.NoError(t, league.AddCompetition(domain.NewCompetition(8, []*domain.Team{away, home}, "Field", nil)))

	return []*domain.League{league, domain.NewLeague(2, "Empty")}
}

func TestCaptureRestore(t *testing.T) {
	id := uuid.MustParse("7b0e7a52-2f3c-4a57-9a0e-8f3cbd1d9a11")
	savedAt := time.Date(2024, time.April, 1, 12, 0, 0, 0, time.UTC)

	snap := Capture(id, savedAt, 8, sampleLeagues(t))

	assert.Equal(t, CurrentVersion, snap.Version)
	assert.Equal(t, id, snap.ID)
	assert.Equal(t, 8, snap.LastOID)
	require.Len(t, snap.Leagues, 2)
	assert.Equal(t, []TeamRef{{OID: 1, Name: "home"}, {OID: 2, Name: "away"}}, snap.Leagues[0].Competitions[0].Teams)

	leagues, err := snap.Restore()
	require.NoError(t, err)
	require.Len(t, leagues, 2)

	al := leagues[0]
	assert.Equal(t, "AL", al.Name)
	assert.Equal(t, 1, al.OID())
	require.Len(t, al.Teams(), 2)
	home := al.Teams()[0]
	require.Len(t, home.Members(), 1)
	assert.Equal(t, "Fred<fred@x.org>", home.Members()[0].String())

	comps := al.Competitions()
	require.Len(t, comps, 2)
	assert.Equal(t, "Competition at Stadium on 03/30/2024 18:00 with 2 teams", comps[0].String())
	// команды соревнования - те же объекты, что и в лиге
	assert.Same(t, home, comps[0].TeamsCompeting()[0])
	assert.Same(t, home, comps[1].TeamsCompeting()[1])

	assert.Empty(t, leagues[1].Teams())
}

func TestRestore_Errors(t *testing.T) {
	t.Run("ошибка: неизвестная версия", func(t *testing.T) {
		snap := &Snapshot{Version: 99}

		_, err := snap.Restore()

		assert.True(t, errors.Is(err, ErrUnsupportedVersion))
	})

	t.Run("ошибка: соревнование ссылается на отсутствующую команду", func(t *testing.T) {
		snap := &Snapshot{
			Version: CurrentVersion,
			Leagues: []League{{
				OID:  1,
				Name: "AL",
				Competitions: []Competition{{
					OID:   1,
					Teams: []TeamRef{{OID: 3, Name: "ghost"}},
				}},
			}},
		}

		_, err := snap.Restore()

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("команда находится по имени, если OID сменился", func(t *testing.T) {
		snap := &Snapshot{
			Version: CurrentVersion,
			Leagues: []League{{
				OID:          1,
				Name:         "AL",
				Teams:        []Team{{OID: 5, Name: "home"}},
				Competitions: []Competition{{OID: 1, Teams: []TeamRef{{OID: 1, Name: "home"}}}},
			}},
		}

		leagues, err := snap.Restore()

		require.NoError(t, err)
		assert.Equal(t, 5, leagues[0].Competitions()[0].TeamsCompeting()[0].OID())
	})
}

func TestCaptureRestore_StateAfterEdits(t *testing.T) {
	id := uuid.MustParse("7b0e7a52-2f3c-4a57-9a0e-8f3cbd1d9a11")
	savedAt := time.Date(2024, time.April, 1, 12, 0, 0, 0, time.UTC)

	t.Run("совпадающие email после прямого изменения участника", func(t *testing.T) {
		league := domain.NewLeague(1, "AL")
		team := domain.NewTeam(1, "home")
		require.NoError(t, league.AddTeam(team))
		a := domain.NewTeamMember(1, "A", "a@x.org")
		b := domain.NewTeamMember(2, "B", "b@x.org")
		require.NoError(t, team.AddMember(a))
		require.NoError(t, team.AddMember(b))
		b.Email = "a@x.org"

		leagues, err := Capture(id, savedAt, 2, []*domain.League{league}).Restore()

		require.NoError(t, err)
		members := leagues[0].Teams()[0].Members()
		require.Len(t, members, 2)
		assert.Equal(t, "a@x.org", members[0].Email)
		assert.Equal(t, "a@x.org", members[1].Email)
	})

	t.Run("команда переименована после добавления соревнования", func(t *testing.T) {
		league := domain.NewLeague(1, "AL")
		home := domain.NewTeam(1, "home")
		away := domain.NewTeam(2, "away")
		require.NoError(t, league.AddTeam(home))
		require.NoError(t, league.AddTeam(away))
		require.NoError(t, league.AddCompetition(domain.NewCompetition(3, []*domain.Team{home, away}, "Field", nil)))
		home.Name = "away"

		leagues, err := Capture(id, savedAt, 3, []*domain.League{league}).Restore()

		require.NoError(t, err)
		al := leagues[0]
		require.Len(t, al.Competitions(), 1)
		assert.Same(t, al.Teams()[0], al.Competitions()[0].TeamsCompeting()[0])
		assert.Same(t, al.Teams()[1], al.Competitions()[0].TeamsCompeting()[1])
	})

	t.Run("незарегистрированная команда с именем зарегистрированной", func(t *testing.T) {
		league := domain.NewLeague(1, "AL")
		home := domain.NewTeam(1, "home")
		away := domain.NewTeam(2, "away")
		require.NoError(t, league.AddTeam(home))
		require.NoError(t, league.AddTeam(away))
		outsider := domain.NewTeam(7, "home")
		require.NoError(t, outsider.AddMember(domain.NewTeamMember(1, "Barney", "barney@x.org")))
		require.NoError(t, league.AddCompetition(domain.NewCompetition(3, []*domain.Team{outsider, away}, "Field", nil)))
		require.NoError(t, league.AddCompetition(domain.NewCompetition(4, []*domain.Team{away, outsider}, "Stadium", nil)))

		snap := Capture(id, savedAt, 7, []*domain.League{league})

		require.Len(t, snap.Leagues[0].DetachedTeams, 1)
		assert.Equal(t, TeamRef{OID: 7, Name: "home", Detached: true}, snap.Leagues[0].Competitions[0].Teams[0])

		data, err := snap.Marshal(FormatJSON)
		require.NoError(t, err)
		decoded, err := Unmarshal(data, FormatJSON)
		require.NoError(t, err)

		leagues, err := decoded.Restore()

		require.NoError(t, err)
		al := leagues[0]
		require.Len(t, al.Teams(), 2)
		comps := al.Competitions()
		require.Len(t, comps, 2)
		restored := comps[0].TeamsCompeting()[0]
		assert.Equal(t, 7, restored.OID())
		require.Len(t, restored.Members(), 1)
		assert.Equal(t, "Barney", restored.Members()[0].Name)
		assert.NotSame(t, al.Teams()[0], restored)
		assert.Same(t, restored, comps[1].TeamsCompeting()[1])
		assert.Same(t, al.Teams()[1], comps[0].TeamsCompeting()[1])
	})

	t.Run("nil-команда в соревновании пропускается", func(t *testing.T) {
		league := domain.NewLeague(1, "AL")
		home := domain.NewTeam(1, "home")
		require.NoError(t, league.AddTeam(home))
		require.NoError(t, league.AddCompetition(domain.NewCompetition(2, []*domain.Team{home, nil}, "Field", nil)))

		var snap *Snapshot
		require.NotPanics(t, func() { snap = Capture(id, savedAt, 2, []*domain.League{league}) })

		assert.Equal(t, []TeamRef{{OID: 1, Name: "home"}}, snap.Leagues[0].Competitions[0].Teams)
		_, err := snap.Restore()
		require.NoError(t, err)
	})

	t.Run("ошибка: ссылка на отсутствующую отдельную команду", func(t *testing.T) {
		snap := &Snapshot{
			Version: CurrentVersion,
			Leagues: []League{{
				OID:          1,
				Name:         "AL",
				Teams:        []Team{{OID: 1, Name: "home"}},
				Competitions: []Competition{{OID: 2, Teams: []TeamRef{{OID: 7, Name: "home", Detached: true}}}},
			}},
		}

		_, err := snap.Restore()

		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestMarshalUnmarshal(t *testing.T) {
	snap := Capture(uuid.New(), time.Date(2024, time.April, 1, 12, 0, 0, 0, time.UTC), 8, sampleLeagues(t))

	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := snap.Marshal(format)
			require.NoError(t, err)

			got, err := Unmarshal(data, format)

			require.NoError(t, err)
			assert.Equal(t, snap.ID, got.ID)
			assert.True(t, snap.SavedAt.Equal(got.SavedAt))
			assert.Equal(t, snap.Leagues, got.Leagues)
		})
	}

	t.Run("ошибка: неизвестное поле", func(t *testing.T) {
		_, err := Unmarshal([]byte(`{"version":1,"extra":true}`), FormatJSON)

		require.Error(t, err)
	})

	t.Run("ошибка: старая версия", func(t *testing.T) {
		_, err := Unmarshal([]byte("version: 0\n"), FormatYAML)

		assert.True(t, errors.Is(err, ErrUnsupportedVersion))
	})
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"leagues.json", FormatJSON},
		{"leagues.db", FormatJSON},
		{"leagues", FormatJSON},
		{"leagues.yaml", FormatYAML},
		{"dir/leagues.YML", FormatYAML},
		{"leagues.yaml.backup", FormatYAML},
		{"leagues.yaml.backup3", FormatYAML},
		{"leagues.yaml.backup.backup", FormatYAML},
		{"leagues.json.backup1", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatForPath(tt.path))
		})
	}
}
