/*
Package testcontainers runs the webftp backends against real servers started in the local Docker daemon.  It exports
RunConformanceTests so that out-of-tree Transport implementations can check that they behave like the built in ones.

The integration tests in this package are guarded by the webftpintegration build tag:

	go test -tags webftpintegration ./...
*/
package testcontainers
