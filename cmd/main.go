// cmd/main.go
package main

import (
	"smartcity-portal/app"
)

// @title           Smart City Portal API
// @version         1.0
// @description     Registration, approval and admin session service of the Smart City Portal.

// @contact.name   Portal Support
// @contact.email  support@smartcity-portal.ng

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
