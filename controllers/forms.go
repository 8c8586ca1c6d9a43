package controllers

import "strings"

// Form inputs and their validation. Each form has a plain Validate method
// returning field-name -> message; an empty map means the input is valid.

type RegisterForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (f *RegisterForm) Validate() map[string]string {
	errs := map[string]string{}
	username := strings.TrimSpace(f.Username)
	switch {
	case username == "":
		errs["username"] = "Username is required"
	case len(username) < 4 || len(username) > 25:
		errs["username"] = "Username must be between 4 and 25 characters"
	}
	switch {
	case f.Password == "":
		errs["password"] = "Password is required"
	case len(f.Password) < 6 || len(f.Password) > 35:
		errs["password"] = "Password must be between 6 and 35 characters"
	}
	return errs
}

type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (f *LoginForm) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(f.Username) == "" {
		errs["username"] = "Username is required"
	}
	if f.Password == "" {
		errs["password"] = "Password is required"
	}
	return errs
}

type DeployForm struct {
	Title   string `form:"title"`
	Name    string `form:"name"`
	Company string `form:"company"`
	Content string `form:"content"`
}

func (f *DeployForm) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(f.Title) == "" {
		errs["title"] = "Title is required"
	}
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(f.Company) == "" {
		errs["company"] = "Company is required"
	}
	if strings.TrimSpace(f.Content) == "" {
		errs["content"] = "Content is required"
	}
	return errs
}

type EditForm struct {
	Title   string `form:"title"`
	Content string `form:"content"`
}

func (f *EditForm) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(f.Title) == "" {
		errs["title"] = "Title is required"
	}
	if strings.TrimSpace(f.Content) == "" {
		errs["content"] = "Content is required"
	}
	return errs
}
