package main

// General API documentation for swaggo. Run `swag init -g cmd/nexus/docs.go` to regenerate docs/.
//
// @title           nexus API
// @version         1.0
// @description     Serves the Nexus AI chat page and its model catalog.
//
// @contact.name   nexus maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
