package config

// DefaultOutputFile is where the collection lands, relative to the project
// root, when no output path is configured.
const DefaultOutputFile = "wexp_postman_collection.json"

// DefaultRoutesDir is the route-file directory of an Express backend,
// relative to the project root.
const DefaultRoutesDir = "src/routes"

// DefaultName is the collection title shown in Postman.
const DefaultName = "WEXP Backend API"

// DefaultDescription is the collection description shown in Postman.
const DefaultDescription = "Auto-generated Postman collection for WEXP Backend"

// Default returns the built-in run configuration: the WEXP backend's route
// files in the order their folders should appear. Everything in it can be
// overridden by a config file or flags.
func Default() *Config {
	return &Config{
		ProjectPath:           ".",
		RoutesDir:             DefaultRoutesDir,
		OutputPath:            DefaultOutputFile,
		OutputFormat:          "json",
		CollectionName:        DefaultName,
		CollectionDescription: DefaultDescription,
		Routers:               []string{"router"},
		DiscoverPattern:       "*.ts",
		Routes: []RouteFile{
			{File: "auth.ts", BasePath: "/api/auth"},
			{File: "events.ts", BasePath: "/api/events"},
			{File: "invitations.ts", BasePath: "/api/invitations"},
			{File: "tours.ts", BasePath: "/api/tours"},
			{File: "vehicles.ts", BasePath: "/api/vehicles"},
			{File: "accommodations.ts", BasePath: "/api/accommodations"},
			{File: "test.ts", BasePath: "/api/test"},
			{File: "templates.ts", BasePath: "/api/templates"},
			{File: "budgets.ts", BasePath: "/api/budgets"},
			{File: "calendar.ts", BasePath: "/api/calendar"},
			{File: "drafts.ts", BasePath: "/api/drafts"},
			{File: "users.ts", BasePath: "/api/users"},
			{File: "ecards.ts", BasePath: "/api/ecards"},
			{File: "venues.ts", BasePath: "/api/venues"},
			{File: "decorations.ts", BasePath: "/api/decorations"},
			{File: "car-import.ts", BasePath: "/api/car-import"},
			{File: "insurance.ts", BasePath: "/api/insurance"},
			{File: "landing.ts", BasePath: "/api/landing"},
			{File: "communications.ts", BasePath: "/api/communications"},
			{File: "messagingRoutes.ts", BasePath: "/api/messaging"},
			{File: "whatsapp.routes.ts", BasePath: "/api/whatsapp"},
			{File: "webhooks.ts", BasePath: "/webhooks"},
		},
	}
}
