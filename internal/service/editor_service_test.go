package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bagdasarian/league-manager/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupEditor(t *testing.T) (EditorService, LeagueDatabase, *MockEmailer, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "leagues.json")
	db := NewLeagueDatabase()
	emailer := new(MockEmailer)
	return NewEditorService(db, emailer, FileStore{Path: path}), db, emailer, path
}

func TestEditorService_Leagues(t *testing.T) {
	editor, db, _, _ := setupEditor(t)

	t.Run("новая лига получает свободный OID", func(t *testing.T) {
		al, err := editor.AddLeague("AL")
		require.NoError(t, err)
		nl, err := editor.AddLeague("NL")
		require.NoError(t, err)

		assert.Equal(t, 1, al.OID())
		assert.Equal(t, 2, nl.OID())
		assert.Len(t, editor.ListLeagues(), 2)
	})

	t.Run("ошибка: имя уже занято", func(t *testing.T) {
		_, err := editor.AddLeague("AL")

		assert.True(t, errors.Is(err, domain.ErrLeagueExists))
	})

	t.Run("ошибка: пустое имя", func(t *testing.T) {
		_, err := editor.AddLeague("  ")

		assert.True(t, errors.Is(err, domain.ErrBadRequest))
	})

	t.Run("удаление освобождает OID", func(t *testing.T) {
		require.NoError(t, editor.RemoveLeague("AL"))

		el, err := editor.AddLeague("EL")
		require.NoError(t, err)
		assert.Equal(t, 1, el.OID())
		assert.Len(t, db.Leagues(), 2)
	})

	t.Run("ошибка: лига не найдена", func(t *testing.T) {
		_, err := editor.GetLeague("ghost")
		assert.True(t, errors.Is(err, domain.ErrNotFound))

		assert.True(t, errors.Is(editor.RemoveLeague("ghost"), domain.ErrNotFound))
	})
}

func TestEditorService_TeamsAndMembers(t *testing.T) {
	editor, _, emailer, _ := setupEditor(t)
	_, err := editor.AddLeague("AL")
	require.NoError(t, err)

	t.Run("команды", func(t *testing.T) {
		team, err := editor.AddTeam("AL", "home")
		require.NoError(t, err)
		assert.Equal(t, 1, team.OID())

		_, err = editor.AddTeam("AL", "home")
		assert.True(t, errors.Is(err, domain.ErrTeamExists))

		_, err = editor.AddTeam("NL", "home")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("участники", func(t *testing.T) {
		fred, err := editor.AddMember("AL", "home", "Fred", "fred@x.org")
		require.NoError(t, err)
		assert.Equal(t, 1, fred.OID())

		_, err = editor.AddMember("AL", "home", "Fred", "other@x.org")
		assert.True(t, errors.Is(err, domain.ErrMemberExists))

		_, err = editor.AddMember("AL", "home", "Barney", "FRED@x.org")
		assert.True(t, errors.Is(err, domain.ErrDuplicateEmail))

		wilma, err := editor.AddMember("AL", "home", "Wilma", "")
		require.NoError(t, err)
		assert.Equal(t, 2, wilma.OID())
	})

	t.Run("изменение участника", func(t *testing.T) {
		updated, err := editor.UpdateMember("AL", "home", 2, "Wilma", "wilma@x.org")
		require.NoError(t, err)
		assert.Equal(t, "wilma@x.org", updated.Email)

		_, err = editor.UpdateMember("AL", "home", 2, "Wilma", "fred@x.org")
		assert.True(t, errors.Is(err, domain.ErrDuplicateEmail))

		_, err = editor.UpdateMember("AL", "home", 42, "x", "")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("письмо команде", func(t *testing.T) {
		emailer.On("SendPlainEmail", []string{"fred@x.org", "wilma@x.org"}, "s", "m").Return(nil).Once()

		require.NoError(t, editor.EmailTeam("AL", "home", "s", "m"))
		emailer.AssertExpectations(t)
	})

	t.Run("удаление участника", func(t *testing.T) {
		require.NoError(t, editor.RemoveMember("AL", "home", "Wilma"))

		err := editor.RemoveMember("AL", "home", "Wilma")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestEditorService_Competitions(t *testing.T) {
	editor, db, emailer, _ := setupEditor(t)
	_, err := editor.AddLeague("AL")
	require.NoError(t, err)
	for _, name := range []string{"home", "away"} {
		_, err := editor.AddTeam("AL", name)
		require.NoError(t, err)
	}
	_, err = editor.AddMember("AL", "home", "Fred", "fred@x.org")
	require.NoError(t, err)
	_, err = editor.AddMember("AL", "away", "Wilma", "wilma@x.org")
	require.NoError(t, err)

	t.Run("OID соревнований монотонный", func(t *testing.T) {
		first, err := editor.AddCompetition("AL", []string{"home", "away"}, "Stadium", nil)
		require.NoError(t, err)
		require.NoError(t, editor.RemoveCompetition("AL", first.OID()))

		second, err := editor.AddCompetition("AL", []string{"away", "home"}, "Field", nil)
		require.NoError(t, err)

		assert.Greater(t, second.OID(), first.OID())
		assert.Equal(t, second.OID()+1, db.NextOID())
	})

	t.Run("ошибка: команда не из лиги", func(t *testing.T) {
		_, err := editor.AddCompetition("AL", []string{"home", "ghost"}, "x", nil)

		assert.True(t, errors.Is(err, domain.ErrReferentialIntegrity))
	})

	t.Run("ошибка: команда указана дважды", func(t *testing.T) {
		_, err := editor.AddCompetition("AL", []string{"home", "home"}, "x", nil)

		assert.True(t, errors.Is(err, domain.ErrBadRequest))
	})

	t.Run("ошибка: удаление команды в соревновании", func(t *testing.T) {
		err := editor.RemoveTeam("AL", "home")

		assert.True(t, errors.Is(err, domain.ErrIntegrityViolation))
	})

	t.Run("письмо участникам соревнования", func(t *testing.T) {
		league, err := editor.GetLeague("AL")
		require.NoError(t, err)
		oid := league.Competitions()[0].OID()
		emailer.On("SendPlainEmail", []string{"wilma@x.org", "fred@x.org"}, "Game", "Tonight").Return(nil).Once()

		require.NoError(t, editor.EmailCompetition("AL", oid, "Game", "Tonight"))
		emailer.AssertExpectations(t)

		err = editor.EmailCompetition("AL", 999, "Game", "Tonight")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("ошибка почты возвращается", func(t *testing.T) {
		league, _ := editor.GetLeague("AL")
		oid := league.Competitions()[0].OID()
		emailer.On("SendPlainEmail", mock.Anything, "fail", "m").Return(errors.New("smtp down")).Once()

		err := editor.EmailCompetition("AL", oid, "fail", "m")

		assert.EqualError(t, err, "smtp down")
	})
}

func TestEditorService_ImportExport(t *testing.T) {
	editor, _, _, _ := setupEditor(t)
	_, err := editor.AddLeague("AL")
	require.NoError(t, err)
	_, err = editor.AddTeam("AL", "home")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "teams.csv")
	content := "Team name,Member name,Member email\nhome,Fred,fred@x.org\nnew,Dino,dino@x.org\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Run("только известные команды", func(t *testing.T) {
		require.NoError(t, editor.ImportTeams("AL", path, true))

		league, _ := editor.GetLeague("AL")
		assert.Len(t, league.Teams(), 1)
	})

	t.Run("с созданием команд", func(t *testing.T) {
		require.NoError(t, editor.ImportTeams("AL", path, false))

		league, _ := editor.GetLeague("AL")
		assert.Len(t, league.Teams(), 2)
		home, _ := league.TeamNamed("home")
		assert.Len(t, home.Members(), 1)
	})

	t.Run("экспорт команды и лиги", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, editor.ExportTeam("AL", "new", filepath.Join(dir, "team.csv")))
		require.NoError(t, editor.ExportLeague("AL", filepath.Join(dir, "league.csv")))

		team, err := os.ReadFile(filepath.Join(dir, "team.csv"))
		require.NoError(t, err)
		assert.Equal(t, "Team name,Member name,Member email\nnew,Dino,dino@x.org\n", string(team))

		league, err := os.ReadFile(filepath.Join(dir, "league.csv"))
		require.NoError(t, err)
		assert.Equal(t, "Team name,Member name,Member email\nhome,Fred,fred@x.org\nnew,Dino,dino@x.org\n", string(league))
	})
}

func TestEditorService_SaveLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("файловое хранилище", func(t *testing.T) {
		editor, db, _, path := setupEditor(t)
		_, err := editor.AddLeague("AL")
		require.NoError(t, err)

		require.NoError(t, editor.Save(ctx))
		assert.FileExists(t, path)

		_, err = editor.AddLeague("NL")
		require.NoError(t, err)
		require.NoError(t, editor.Load(ctx))
		assert.Len(t, db.Leagues(), 1)
	})

	t.Run("репозиторий", func(t *testing.T) {
		repo := new(MockSnapshotRepository)
		db := NewLeagueDatabase()
		editor := NewEditorService(db, new(MockEmailer), RepositoryStore{Name: "mock", Repo: repo})

		repo.On("Save", mock.Anything, mock.Anything).Return(nil).Once()
		repo.On("Load", mock.Anything).Return(nil, domain.NewNotFoundError("league snapshot")).Once()

		require.NoError(t, editor.Save(ctx))
		err := editor.Load(ctx)

		assert.True(t, errors.Is(err, domain.ErrNotFound))
		repo.AssertExpectations(t)
	})
}
