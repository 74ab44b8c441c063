package main

import "net/http"

type adminTokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"` // seconds
}

// CreateAdminToken godoc
//
//	@Summary		Issue an admin token
//	@Description	Only mounted when ADMIN_AUTH_MODE=jwt. Send the token as X-Admin-Key or as a bearer token.
//	@Tags			auth
//	@Produce		json
//	@Success		201	{object}	adminTokenResponse
//	@Failure		401	{object}	error
//	@Security		BasicAuth
//	@Router			/auth/token [post]
func (app *application) createAdminTokenHandler(w http.ResponseWriter, r *http.Request) {
	token, err := app.tokens.IssueToken()
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	resp := adminTokenResponse{
		Token:     token,
		ExpiresIn: int64(app.config.auth.admin.tokenExp.Seconds()),
	}
	if err := app.jsonResponse(w, http.StatusCreated, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}
