package between_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bawdo/between"
	"github.com/bawdo/between/plugins/rangefilter"
)

// TestSimpleImportStyle uses only the convenience package.
func TestSimpleImportStyle(t *testing.T) {
	t.Parallel()
	users := between.NewTable("users")

	query := between.NewSelect(users).
		Select(users.Col("id"), users.Col("name")).
		Where(users.Col("age").Between(18, 65)).
		Where(users.Col("active").Eq(between.Literal(true))).
		Order(users.Col("name").Asc()).
		Limit(10)

	sql, params, err := query.ToSQL(between.NewPostgresVisitor(between.WithoutParams()))
	require.NoError(t, err)
	assert.Equal(t, `SELECT "users"."id", "users"."name" FROM "users" WHERE ("users"."age" BETWEEN 18 AND 65) AND "users"."active" = TRUE ORDER BY "users"."name" ASC LIMIT 10`, sql)
	assert.Nil(t, params)
}

func TestParameterisedQuery(t *testing.T) {
	t.Parallel()
	users := between.NewTable("users")
	query := between.NewSelect(users).
		Where(between.NotBetween(users.Col("age"), between.BindParam(18), between.BindParam(65)))

	sql, params, err := query.ToSQL(between.NewPostgresVisitor(between.WithParams()))
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "users" WHERE ("users"."age" NOT BETWEEN $1 AND $2)`, sql)
	assert.Equal(t, []any{18, 65}, params)
}

func TestRenderDialects(t *testing.T) {
	t.Parallel()
	pred := between.Between(between.Ident("a"), between.Ident("b"), 2)

	assert.Equal(t, `("a" BETWEEN "b" AND 2)`, between.Render(between.NewPostgresVisitor(), pred))
	assert.Equal(t, "(`a` BETWEEN `b` AND ?)", between.Render(between.NewMySQLVisitor(), pred))
	assert.Equal(t, `("a" BETWEEN "b" AND 2)`, between.Render(between.NewSQLiteVisitor(), pred))
	assert.Equal(t, `(a BETWEEN b AND 2)`, between.Render(between.NewMSSQLVisitor(), pred))
}

func TestRenderResetsParams(t *testing.T) {
	t.Parallel()
	v := between.NewPostgresVisitor(between.WithParams())
	pred := between.Ident("a").Between(1, 2)

	between.Render(v, pred)
	assert.Equal(t, `("a" BETWEEN $1 AND $2)`, between.Render(v, pred))
	assert.Equal(t, []any{1, 2}, v.Params())
}

func TestRenderIncompletePanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		between.Render(between.NewPostgresVisitor(), between.Between(between.Ident("a"), 1))
	})
}

func TestStagedBuild(t *testing.T) {
	t.Parallel()
	staged := between.Between(between.Ident("age")).Lower(18)
	_, _, err := between.NewSelect(between.NewTable("users")).Where(staged).ToSQL(between.NewPostgresVisitor())
	assert.ErrorIs(t, err, between.ErrIncompleteBetween)

	full := between.Between(staged, nil, 65)
	assert.Equal(t, `("age" BETWEEN 18 AND 65)`, between.Render(between.NewPostgresVisitor(), full))
}

func TestDeleteWithRangeFilter(t *testing.T) {
	t.Parallel()
	logs := between.NewTable("logs")
	query := between.NewDelete(logs).
		Use(rangefilter.New("created_at", between.Lit("'2020-01-01'"), between.Lit("'2020-12-31'")))

	sql, _, err := query.ToSQL(between.NewSQLiteVisitor())
	require.NoError(t, err)
	assert.Equal(t, `DELETE FROM "logs" WHERE ("logs"."created_at" BETWEEN '2020-01-01' AND '2020-12-31')`, sql)
}

func ExampleBetween() {
	users := between.NewTable("users")
	pred := between.Between(users.Col("age"), 18, 65)
	fmt.Println(between.Render(between.NewPostgresVisitor(), pred))
	fmt.Println(between.Render(between.NewMSSQLVisitor(), pred.Negate()))
	// Output:
	// ("users"."age" BETWEEN 18 AND 65)
	// (users.age NOT BETWEEN 18 AND 65)
}

func ExampleBetween_staged() {
	pred := between.Between(between.Ident("price")).Lower(10).Upper(20)
	fmt.Println(between.Render(between.NewSQLiteVisitor(), pred))
	// Output:
	// ("price" BETWEEN 10 AND 20)
}
