package api

import "pubquiz-admin/internal/models"

// Login exchanges team credentials for a bearer token and remembers it
// on the client for subsequent profile calls.
func (c *Client) Login(username, password string) (models.LoginResponse, error) {
	var resp models.LoginResponse
	body := models.LoginRequest{Username: username, Password: password}
	if err := c.post("/login", body, &resp); err != nil {
		return models.LoginResponse{}, err
	}
	c.token = resp.Token
	return resp, nil
}

// UpdateTeamProfile updates the logged-in team's profile. Requires a
// prior Login or SetToken.
func (c *Client) UpdateTeamProfile(profile models.TeamProfile) (models.Team, error) {
	var team models.Team
	if err := c.put("/teams/profile", profile, &team); err != nil {
		return models.Team{}, err
	}
	return team, nil
}
