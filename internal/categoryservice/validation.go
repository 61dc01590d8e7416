package categoryservice

import "github.com/sulaski/blogden/internal/common"

func validateTitle(v *common.Validator, title string) {
	v.Check(title != "", "title", "must be provided")
	v.Check(v.CheckStringLength(title, 1, 100), "title", "must not be more than 100 characters long")
}
