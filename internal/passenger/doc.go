// Package passenger models a Passenger application served by a local Apache
// vhost: a document root path, a host name, a Rails environment and whether
// mod_rewrite is allowed.
//
// An Application is created through a Manager, which carries the apps
// directory, the hosts file and the two collaborators that perform side
// effects:
//
//	m := passenger.NewManager(cfg.AppsDir, cfg.HostsFile, installer, apache)
//
//	app := m.NewWithPath("/Users/manfred/code/blog") // host: blog.local
//	app.SetEnvironment(passenger.Production)
//	if app.IsValid() {
//	    err = app.Apply() // installs the vhost, then apachectl graceful
//	}
//
//	existing, err := m.Find("blog.local")
//	existing.SetAllowModRewrite(true)
//	err = existing.Apply() // saves because dirty, then touches tmp/restart.txt
//
// # State
//
// IsValid is derived from host and path on every call. IsDirty turns true on
// any setter call and is cleared by Apply and Restart. Records built with
// New, NewWithPath or loaded from disk start clean.
//
// Application is not safe for concurrent use.
package passenger
