package repositories

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/sportsmeet/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        IUserRepository
	EventRepository       IEventRepository
	ParticipantRepository IParticipantRepository
	ContactRepository     IContactRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(database),
		EventRepository:       NewEventRepository(database),
		ParticipantRepository: NewParticipantRepository(database),
		ContactRepository:     NewContactRepository(database),
	}
}

// isNoRows reports whether err means the query matched nothing
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching q anywhere, with wildcards in q taken literally
func containsPattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}
