package webpath

const (
	Home = "/"

	Auth         = "/auth"
	AuthRegister = Auth + "/register"
	AuthLogin    = Auth + "/login"
	AuthVerify   = Auth + "/verify"

	Teams      = "/teams"
	TeamByID   = Teams + "/:id"
	Players    = "/players"
	PlayerByID = Players + "/:id"
	PlayerTeam = PlayerByID + "/team"

	Admin      = "/admin"
	AdminUsers = Admin + "/users"
	AdminSeed  = Admin + "/seed-data"
	AdminClear = Admin + "/clear-data"
)

func Path() map[string]string {
	return map[string]string{
		"Home":     Home,
		"Register": AuthRegister,
		"Login":    AuthLogin,
		"Teams":    Teams,
		"Players":  Players,
	}
}
