// Package storefront is a Go client SDK for the craftmarket storefront
// API: product browsing, supplier profiles, lead-capture forms,
// subscription checkout, and authentication.
//
// The SDK owns no business rules and no server-side persistence; all
// of that lives behind the remote HTTP API. What it does own is the
// client-side session: where credentials live between runs, how they
// are recovered at startup, how they ride on every request, and what
// happens when the server declares them invalid.
//
// # Quick start
//
//	client := storefront.New(
//	    storefront.WithLogger(log),
//	    storefront.WithNavigator(guard.NavigatorFunc(openLogin)),
//	)
//
//	user, err := client.Login(ctx, storefront.LoginRequest{
//	    Email:    "a@b.com",
//	    Password: "secret1",
//	})
//
// After a successful login every request carries the bearer token
// automatically, and the session survives process restarts:
//
//	sess := client.Hydrate(ctx) // reconcile with durable storage
//	if sess.Authenticated() {
//	    products, _ := client.Products(ctx, storefront.ProductQuery{})
//	    ...
//	}
//
// # Protected views
//
// Guarded operations run only against a settled, authenticated
// session; unauthenticated visitors are routed to login with the
// originally requested destination preserved:
//
//	state := client.Guard().Resolve(ctx, "/account/orders")
//
// # Forced logout
//
// A 401 response from any endpoint clears the session and fires the
// configured navigator, independent of how the calling code handles
// the returned error.
//
// # Cross-process consistency
//
// Sibling processes sharing the same state directory converge on
// login state through the storage watcher:
//
//	w := client.WatchLogins(func(loggedIn bool) { refreshHeader(loggedIn) })
//	go w.Run(ctx)
package storefront
