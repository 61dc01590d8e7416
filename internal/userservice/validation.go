package userservice

import "github.com/sulaski/blogden/internal/common"

func validateUsername(v *common.Validator, username string) {
	v.Check(username != "", "username", "must be provided")
	v.Check(v.CheckStringLength(username, 1, 50), "username", "must not be more than 50 characters long")
}
