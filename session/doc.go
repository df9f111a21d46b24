/*
Package session keeps the authenticated remote connections opened through the gateway, keyed by an opaque id.

A Registry owns every webftp.Conn handed to it.  Nothing else may use a Conn directly; callers run operations through
Registry.Do, which serializes work on one session while leaving other sessions untouched:

	reg := session.NewRegistry(
	    session.WithIdleTimeout(10*time.Minute),
	    session.WithSweepInterval(5*time.Minute),
	)
	defer reg.Close(context.Background())

	id, err := reg.Create(conn)
	if err != nil {
	    return err
	}

	err = reg.Do(ctx, id, func(c webftp.Conn) error {
	    entries, err := c.List(ctx, "/")
	    ...
	})

Every successful lookup extends the session's life.  A background loop evicts sessions that have been idle longer than
the idle timeout; a session with an operation in flight is never idle.
*/
package session
