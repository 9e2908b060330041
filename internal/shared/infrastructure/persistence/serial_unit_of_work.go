package persistence

import (
	"context"
	"errors"
	"sync/atomic"
)

type serialKey struct{}

// serialHold is one acquisition of a SerialUnitOfWork.
type serialHold struct {
	owner    *SerialUnitOfWork
	released atomic.Bool
}

// SerialInfo marks a context as holding the serial unit of work.
type SerialInfo struct {
	Owned bool

	hold *serialHold
}

func withSerial(ctx context.Context, hold *serialHold, owned bool) context.Context {
	return context.WithValue(ctx, serialKey{}, SerialInfo{Owned: owned, hold: hold})
}

// SerialInfoFromContext extracts serial ownership info from the context.
func SerialInfoFromContext(ctx context.Context) (SerialInfo, bool) {
	info, ok := ctx.Value(serialKey{}).(SerialInfo)
	return info, ok
}

// SerialUnitOfWork runs one unit of work at a time across the whole process.
// Nested Begin calls join only while the enclosing unit on this instance is
// still held; a context kept past its Commit has to wait like any other.
type SerialUnitOfWork struct {
	sem chan struct{}
}

// NewSerialUnitOfWork creates a new SerialUnitOfWork.
func NewSerialUnitOfWork() *SerialUnitOfWork {
	return &SerialUnitOfWork{sem: make(chan struct{}, 1)}
}

// Begin acquires the unit of work, waiting until it is free or ctx is done.
func (u *SerialUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if info, ok := SerialInfoFromContext(ctx); ok && u.holds(info) {
		return withSerial(ctx, info.hold, false), nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	select {
	case u.sem <- struct{}{}:
		return withSerial(ctx, &serialHold{owner: u}, true), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Commit releases the unit of work if this context owns it.
func (u *SerialUnitOfWork) Commit(ctx context.Context) error {
	return u.release(ctx)
}

// Rollback releases the unit of work if this context owns it. The stores keep
// their own in-memory state consistent, so there is nothing to undo here.
func (u *SerialUnitOfWork) Rollback(ctx context.Context) error {
	return u.release(ctx)
}

func (u *SerialUnitOfWork) holds(info SerialInfo) bool {
	return info.hold != nil && info.hold.owner == u && !info.hold.released.Load()
}

func (u *SerialUnitOfWork) release(ctx context.Context) error {
	info, ok := SerialInfoFromContext(ctx)
	if !ok || info.hold == nil || info.hold.owner != u {
		return errors.New("no unit of work in context")
	}
	if !info.Owned {
		return nil
	}
	if !info.hold.released.CompareAndSwap(false, true) {
		return errors.New("unit of work released twice")
	}
	<-u.sem
	return nil
}
