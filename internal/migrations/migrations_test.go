package migrations

import (
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSource_VersionsArePairedAndOrdered(t *testing.T) {
	driver, err := Source()
	require.NoError(t, err)
	defer driver.Close()

	var versions []uint
	version, err := driver.First()
	require.NoError(t, err)

	for {
		versions = append(versions, version)

		up, _, err := driver.ReadUp(version)
		require.NoError(t, err, "missing up migration for version %d", version)
		body, err := io.ReadAll(up)
		require.NoError(t, err)
		require.NotEmpty(t, body)
		up.Close()

		down, _, err := driver.ReadDown(version)
		require.NoError(t, err, "missing down migration for version %d", version)
		down.Close()

		next, err := driver.Next(version)
		if errors.Is(err, fs.ErrNotExist) {
			break
		}
		require.NoError(t, err)
		version = next
	}

	require.Equal(t, []uint{1, 2}, versions)
}

func TestFiles_ProductsTableMatchesBootstrapShape(t *testing.T) {
	body, err := fs.ReadFile(Files, "000002_create_shop_products_table.up.sql")
	require.NoError(t, err)

	sql := string(body)
	require.Contains(t, sql, "CREATE TABLE IF NOT EXISTS shop_products")
	require.Contains(t, sql, "REFERENCES users(id) ON DELETE SET NULL")
	require.Contains(t, sql, "idx_shop_products_category")
}

type fakeMigrator struct {
	mock.Mock
}

func (f *fakeMigrator) Version() (uint, bool, error) {
	args := f.Called()
	return args.Get(0).(uint), args.Bool(1), args.Error(2)
}

func (f *fakeMigrator) Force(version int) error {
	return f.Called(version).Error(0)
}

func (f *fakeMigrator) Up() error {
	return f.Called().Error(0)
}

func TestApply_DirtyState(t *testing.T) {
	t.Run("auto-migrate steps back and re-applies", func(t *testing.T) {
		m := &fakeMigrator{}
		m.On("Version").Return(uint(2), true, nil).Once()
		m.On("Force", 1).Return(nil).Once()
		m.On("Up").Return(nil).Once()
		m.On("Version").Return(uint(2), false, nil).Once()

		require.NoError(t, apply(m, true))
		m.AssertExpectations(t)
	})

	t.Run("auto-migrate on first version forces nil version", func(t *testing.T) {
		m := &fakeMigrator{}
		m.On("Version").Return(uint(1), true, nil).Once()
		m.On("Force", database.NilVersion).Return(nil).Once()
		m.On("Up").Return(nil).Once()
		m.On("Version").Return(uint(2), false, nil).Once()

		require.NoError(t, apply(m, true))
		m.AssertExpectations(t)
	})

	t.Run("auto-migrate disabled marks current version clean", func(t *testing.T) {
		m := &fakeMigrator{}
		m.On("Version").Return(uint(2), true, nil).Once()
		m.On("Force", 2).Return(nil).Once()

		require.NoError(t, apply(m, false))
		m.AssertExpectations(t)
		m.AssertNotCalled(t, "Up")
		m.AssertNotCalled(t, "Force", 1)
	})

	t.Run("force failure is returned", func(t *testing.T) {
		m := &fakeMigrator{}
		m.On("Version").Return(uint(2), true, nil).Once()
		m.On("Force", 1).Return(errors.New("locked")).Once()

		err := apply(m, true)
		require.ErrorContains(t, err, "version 2")
		m.AssertNotCalled(t, "Up")
	})
}

func TestApply_CleanState(t *testing.T) {
	t.Run("disabled does nothing", func(t *testing.T) {
		m := &fakeMigrator{}
		m.On("Version").Return(uint(2), false, nil).Once()

		require.NoError(t, apply(m, false))
		m.AssertNotCalled(t, "Force", mock.Anything)
		m.AssertNotCalled(t, "Up")
	})

	t.Run("fresh database with no change", func(t *testing.T) {
		m := &fakeMigrator{}
		m.On("Version").Return(uint(0), false, migrate.ErrNilVersion).Once()
		m.On("Up").Return(migrate.ErrNoChange).Once()

		require.NoError(t, apply(m, true))
		m.AssertExpectations(t)
		m.AssertNotCalled(t, "Force", mock.Anything)
	})

	t.Run("up failure is returned", func(t *testing.T) {
		m := &fakeMigrator{}
		m.On("Version").Return(uint(1), false, nil).Once()
		m.On("Up").Return(errors.New("syntax error")).Once()

		require.ErrorContains(t, apply(m, true), "failed to run migrations")
	})
}
