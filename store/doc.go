// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store defines the persistence contract for pressure readings and
its SQL implementation.

# Contract

The Store interface is the only view the rest of the server has of the
database:

	Append(ctx, reading) (id, error)
	QueryByUser(ctx, userID, limit) ([]PressureReading, error)
	QueryByUserSince(ctx, userID, since) ([]PressureReading, error)
	DeleteByID(ctx, id) (found, error)

Readings are append/delete only; there is no update operation. Ids are
store-assigned uuids. Per-user reads are causally consistent with prior
writes from the same process because every request shares one *sql.DB.

# SQL Implementation

SQLStore runs on both database types the server supports:

	st := store.NewSQLStore(conn)

The queries are backed by the composite (user_id, recorded_at) index
created by the db package. Tests run against an in-memory sqlite database;
handler-level tests substitute the fake store from testutil instead.
*/
package store
