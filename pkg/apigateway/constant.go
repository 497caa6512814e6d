package apigateway

// Remote resource paths.
const (
	PathMailingLists = "/listes-diffusion"
	PathProjects     = "/projets"
	PathGroups       = "/groupes"
	PathRooms        = "/salles-discussion"
	PathGeneralRoom  = "/salles-discussion/generale"
	PathMe           = "/auth/me"

	// byUserSegment is appended to a resource path for GetByUser.
	byUserSegment = "/utilisateur/"
)
