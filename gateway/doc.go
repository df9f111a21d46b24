/*
Package gateway is the HTTP face of webftp.  It maps short, stateless requests onto long lived remote sessions held by a
session.Registry, and streams file bodies between the browser and the remote server without buffering them.

Routes are mounted under /api/ftp:

	POST   /connect                  open a session, optionally remembering the connection
	GET    /list                     list a directory
	GET    /download                 stream a file
	POST   /upload                   stream one or more multipart file parts
	POST   /disconnect               close a session
	GET    /connections              list remembered connections
	POST   /connections/{id}/connect open a session from a remembered connection
	DELETE /connections/{id}         forget a remembered connection

Every JSON response carries a success flag.  Failures are {"success":false,"message":...} with a status derived from
the webftp error the failure wraps.
*/
package gateway
