// Package template renders the Apache vhost block of a Passenger application
// from an embedded Go template.
//
// The rendered block is the same shape the config installer writes, so it
// can be shown as a preview before anything is installed:
//
//	<VirtualHost *:80>
//	  ServerName blog.local
//	  DocumentRoot "/Users/manfred/code/blog/public"
//	  RailsEnv development
//	  <directory "/Users/manfred/code/blog/public">
//	    Order allow,deny
//	    Allow from all
//	  </directory>
//	</VirtualHost>
//
// RailsAllowModRewrite on is added only when the record allows mod_rewrite.
package template
