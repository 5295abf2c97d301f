// Package config holds the passengerpane settings and the serialized
// application record passed to the external config installer.
//
// Settings live in ~/.config/passengerpane/config.yaml. Every key is optional;
// missing keys fall back to defaults detected for the current platform.
//
// Example config.yaml:
//
//	apps_dir: /private/etc/apache2/passenger_pane_vhosts
//	hosts_file: /etc/hosts
//	ruby: /usr/bin/ruby
//	installer: /usr/local/share/passengerpane/config_installer.rb
//	uninstaller: /usr/local/share/passengerpane/config_uninstaller.rb
//	apachectl: /usr/sbin/apachectl
//	touch: /usr/bin/touch
//
// A Record marshals to the mapping the installer reads:
//
//	- config_path: /private/etc/apache2/passenger_pane_vhosts/blog.local.vhost.conf
//	  host: blog.local
//	  path: /Users/manfred/code/blog
//	  environment: development
//	  allow_mod_rewrite: false
//
// Config operations are NOT thread-safe.
package config
