package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dtroode/tasklist-server/internal/model"
)

func TestPASETO_Roundtrip(t *testing.T) {
	p, err := NewPASETO("secret", 2*time.Hour)
	require.NoError(t, err)
	id := model.Identity{UserID: 7, Email: "p@q.r"}

	tok, err := p.Issue(id)
	require.NoError(t, err)

	got, err := p.Parse(tok)
	require.NoError(t, err)
	require.Equal(t, id, got)
}

func TestPASETO_ExpiryValidation(t *testing.T) {
	p, err := NewPASETO("secret", 2*time.Hour)
	require.NoError(t, err)

	issuedAt := time.Now().Add(-time.Minute).Truncate(time.Second)
	p.now = func() time.Time { return issuedAt }
	tok, err := p.Issue(model.Identity{UserID: 1, Email: "a@b.c"})
	require.NoError(t, err)

	p.now = func() time.Time { return issuedAt.Add(2*time.Hour + time.Second) }
	_, err = p.Parse(tok)
	require.ErrorIs(t, err, ErrExpired)
}

func TestPASETO_WrongKey(t *testing.T) {
	p1, err := NewPASETO("secret", time.Hour)
	require.NoError(t, err)
	p2, err := NewPASETO("other", time.Hour)
	require.NoError(t, err)

	tok, err := p1.Issue(model.Identity{UserID: 1})
	require.NoError(t, err)

	_, err = p2.Parse(tok)
	require.ErrorIs(t, err, ErrMalformed)
}

func TestPASETO_RejectsJWT(t *testing.T) {
	p, err := NewPASETO("secret", time.Hour)
	require.NoError(t, err)
	jwtTok, err := NewJWT("secret", time.Hour).Issue(model.Identity{UserID: 1})
	require.NoError(t, err)

	_, err = p.Parse(jwtTok)
	require.ErrorIs(t, err, ErrMalformed)
}
