// Package server owns the network transport for the static file server. It
// wraps http.Server with graceful shutdown and configuration options, accepts
// connections, hands each parsed request head to a dispatch.Dispatcher, and
// encodes the returned response description onto the wire in header order.
//
// The transport deliberately knows nothing about the filesystem: everything
// between the request head and the response description is the dispatcher's
// job. Wire concerns that are not the dispatcher's job (keep-alive, timeouts,
// backpressure, HEAD body suppression) live here.
//
//	srv := server.New(":8080", server.WithLogger(log))
//	d := dispatch.New(docRoot, dispatch.WithLogger(log))
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//
//	if err := srv.Start(ctx, d); err != nil && !errors.Is(err, context.Canceled) {
//		// startup failure
//	}
package server
