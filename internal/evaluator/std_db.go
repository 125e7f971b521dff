package evaluator

import (
	"database/sql"
	"errors"
	"fmt"
	"jl/internal/object"
	"log/slog"
	"strconv"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

const ErrDB = "db"

// dbHandles maps the numeric handles seen by programs to open connections.
type dbHandles struct {
	conns map[int64]*sql.DB
	next  int64
}

func newDBHandles() *dbHandles {
	return &dbHandles{conns: map[int64]*sql.DB{}}
}

func (h *dbHandles) add(db *sql.DB) int64 {
	h.next++
	h.conns[h.next] = db
	return h.next
}

func (h *dbHandles) get(id int64) (*sql.DB, bool) {
	db, ok := h.conns[id]
	return db, ok
}

func (h *dbHandles) remove(id int64) (*sql.DB, bool) {
	db, ok := h.conns[id]
	delete(h.conns, id)
	return db, ok
}

func (h *dbHandles) closeAll() error {
	var errs []error
	for id, db := range h.conns {
		if err := db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing db handle %d: %w", id, err))
		}
		delete(h.conns, id)
	}
	return errors.Join(errs...)
}

// dbOwner is implemented by contexts that keep a connection table.
type dbOwner interface {
	databases() *dbHandles
}

func databasesOf(ctx object.EvaluatorContext) (*dbHandles, object.Object) {
	owner, ok := ctx.(dbOwner)
	if !ok {
		return nil, object.NewSoftError(ErrDB, "no connection table")
	}
	return owner.databases(), nil
}

func dbModule() map[string]object.Builtin {
	return map[string]object.Builtin{
		"db-open":  fnDbOpen(),
		"db-exec":  fnDbExec(),
		"db-query": fnDbQuery(),
		"db-close": fnDbClose(),
	}
}

// fnDbOpen opens and pings a connection and returns its numeric handle.
// Registered drivers: sqlite3, sqlite, mysql, postgres.
func fnDbOpen() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) != 2 {
			return object.BadArity(len(args), 2)
		}
		handles, errObj := databasesOf(ctx)
		if errObj != nil {
			return errObj
		}
		evaluated := evalArgs(ctx, args)
		driver, ok1 := evaluated[0].(*object.String)
		dsn, ok2 := evaluated[1].(*object.String)
		if !ok1 || !ok2 {
			return object.NewSoftError(object.ErrBadArg, "db-open expects a driver name and a data source string")
		}

		db, err := sql.Open(driver.Value, dsn.Value)
		if err != nil {
			return object.NewSoftError(ErrDB, fmt.Sprintf("failed to open connection: %v", err))
		}
		if driver.Value == "sqlite" || driver.Value == "sqlite3" {
			// every connection to ":memory:" is a separate database
			db.SetMaxOpenConns(1)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return object.NewSoftError(ErrDB, fmt.Sprintf("failed to ping database: %v", err))
		}

		handle := handles.add(db)
		slog.Debug("db opened", slog.String("driver", driver.Value), slog.Int64("handle", handle))
		return object.NewNumber(handle)
	}
}

func fnDbExec() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) < 2 {
			return object.BadArity(len(args), 2)
		}
		db, query, params, errObj := statementArgs(ctx, evalArgs(ctx, args))
		if errObj != nil {
			return errObj
		}

		result, err := db.Exec(query, params...)
		if err != nil {
			return object.NewSoftError(ErrDB, fmt.Sprintf("exec failed: %v", err))
		}

		affected, _ := result.RowsAffected()
		lastID, _ := result.LastInsertId()
		return object.NewMap().
			With("rows-affected", object.NewNumber(affected)).
			With("last-insert-id", object.NewNumber(lastID))
	}
}

// fnDbQuery returns the result set as a list of maps keyed by column name.
func fnDbQuery() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) < 2 {
			return object.BadArity(len(args), 2)
		}
		db, query, params, errObj := statementArgs(ctx, evalArgs(ctx, args))
		if errObj != nil {
			return errObj
		}

		rows, err := db.Query(query, params...)
		if err != nil {
			return object.NewSoftError(ErrDB, fmt.Sprintf("query failed: %v", err))
		}
		defer rows.Close()

		result, err := renderRows(rows)
		if err != nil {
			return object.NewSoftError(ErrDB, fmt.Sprintf("query failed: %v", err))
		}
		return result
	}
}

func fnDbClose() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.BadArity(len(args), 1)
		}
		handles, errObj := databasesOf(ctx)
		if errObj != nil {
			return errObj
		}
		handle, ok := ctx.Eval(args[0]).(*object.Number)
		if !ok {
			return object.NewSoftError(object.ErrBadArg, "db-close expects a connection handle")
		}
		db, ok := handles.remove(handle.Value)
		if !ok {
			return object.NewSoftError(ErrDB, "invalid connection handle")
		}
		if err := db.Close(); err != nil {
			return object.NewSoftError(ErrDB, err.Error())
		}
		return object.NULL
	}
}

// statementArgs unpacks [handle, sql, params...].
func statementArgs(ctx object.EvaluatorContext, args []object.Object) (*sql.DB, string, []interface{}, object.Object) {
	handles, errObj := databasesOf(ctx)
	if errObj != nil {
		return nil, "", nil, errObj
	}
	handle, ok := args[0].(*object.Number)
	if !ok {
		return nil, "", nil, object.NewSoftError(object.ErrBadArg, "expected a connection handle")
	}
	db, ok := handles.get(handle.Value)
	if !ok {
		return nil, "", nil, object.NewSoftError(ErrDB, "invalid connection handle")
	}
	query, ok := args[1].(*object.String)
	if !ok {
		return nil, "", nil, object.NewSoftError(object.ErrBadArg, "expected an sql string")
	}
	params := make([]interface{}, len(args)-2)
	for i, arg := range args[2:] {
		params[i] = toSQLParam(arg)
	}
	return db, query.Value, params, nil
}

func toSQLParam(o object.Object) interface{} {
	switch o := o.(type) {
	case *object.Null:
		return nil
	case *object.Boolean:
		return o.Value
	case *object.Number:
		return o.Value
	case *object.String:
		return o.Value
	default:
		return o.Inspect()
	}
}

func renderRows(rows *sql.Rows) (object.Object, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	result := []object.Object{}

	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		pairs := make(map[string]object.Object, len(columns))
		for i, col := range columns {
			pairs[col] = fromSQLValue(values[i])
		}
		result = append(result, &object.Map{Pairs: pairs})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &object.List{Elements: result}, nil
}

// fromSQLValue maps a scanned column. There is no fractional number type, so
// floating point columns come back as their decimal text.
func fromSQLValue(v interface{}) object.Object {
	if v == nil {
		return object.NULL
	}
	switch x := v.(type) {
	case int64:
		return object.NewNumber(x)
	case float64:
		return object.NewString(strconv.FormatFloat(x, 'f', -1, 64))
	case []byte:
		return object.NewString(string(x))
	case string:
		return object.NewString(x)
	case bool:
		return object.NativeBoolToBooleanObject(x)
	case time.Time:
		return object.NewString(x.Format(time.RFC3339))
	default:
		return object.NewString(fmt.Sprintf("%v", v))
	}
}
