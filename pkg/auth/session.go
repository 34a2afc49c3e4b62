package auth

import (
	"context"
	"database/sql"
	"time"

	"github.com/caseboard/caseboard-backend/pkg/database/gensql"
	"github.com/google/uuid"
)

var queries *gensql.Queries

type Session struct {
	Token    string
	UserID   uuid.UUID
	Username string
	Name     string
	Expires  time.Time
}

func Init(db *sql.DB) {
	queries = gensql.New(db)
}

func CreateSession(ctx context.Context, session *Session) error {
	return queries.CreateSession(ctx, gensql.CreateSessionParams{
		Token:   session.Token,
		UserID:  session.UserID,
		Expires: session.Expires,
	})
}

func GetSession(ctx context.Context, token string) (*Session, error) {
	sess, err := queries.GetSession(ctx, token)
	if err != nil {
		return nil, err
	}

	return &Session{
		Token:    sess.Token,
		UserID:   sess.UserID,
		Username: sess.Username,
		Name:     sess.UserName,
		Expires:  sess.Expires,
	}, nil
}

func DeleteSession(ctx context.Context, token string) error {
	return queries.DeleteSession(ctx, token)
}
