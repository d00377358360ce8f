package db

import (
	"testing"

	"github.com/oldsell/oldsell-backend/internal/config"
	"github.com/oldsell/oldsell-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{
			"host and port",
			config.Config{DBUser: "u", DBPassword: "p", DBHost: "localhost", DBPort: "3306", DBName: "sell"},
			"u:p@tcp(localhost:3306)/sell?charset=utf8mb4&parseTime=True&loc=Local",
		},
		{
			"explicit tcp",
			config.Config{DBUser: "u", DBPassword: "p", DBHost: "tcp(db:3306)", DBName: "sell"},
			"u:p@tcp(db:3306)/sell?charset=utf8mb4&parseTime=True&loc=Local",
		},
		{
			"socket path",
			config.Config{DBUser: "u", DBPassword: "p", DBHost: "/var/run/mysqld.sock", DBName: "sell"},
			"u:p@unix(/var/run/mysqld.sock)/sell?charset=utf8mb4&parseTime=True&loc=Local",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildDSN(&tt.cfg))
		})
	}
}

func TestMigrateAndBootstrap(t *testing.T) {
	cfg := &config.Config{DBDriver: "sqlite", DBPath: ":memory:"}
	conn, err := Connect(cfg)
	require.NoError(t, err)
	require.NoError(t, Migrate(conn))

	// Bootstrap seeds the admin exactly once.
	require.NoError(t, Bootstrap(conn))
	require.NoError(t, Bootstrap(conn))

	var admins []model.User
	require.NoError(t, conn.Where("username = ?", "admin").Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.True(t, admins[0].IsAdmin)
	assert.NotEqual(t, "adminpass", admins[0].PasswordHash)
	assert.Equal(t, "admin@example.com", admins[0].Email)
}
