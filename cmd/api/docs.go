package main

// General API information for swag.
//
//	@title			Order Weather API
//	@version		1.0
//	@description	Decides whether weather permits delivering an order today, by geocoding its address and reading the daily forecast.
//	@contact.name	API Support
//	@contact.email	support@example.com
//	@host			localhost:8080
//	@BasePath		/
//	@schemes		http
