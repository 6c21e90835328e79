// @title           Yad Tamar API
// @version         1.0
// @description     Volunteer coordination backend: matching, approvals and dashboards.
// @contact.name    Yad Tamar
// @contact.email   dev@yadtamar.org
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import "yadtamar_backend/internal/app"

func main() {
	app.Run()
}
