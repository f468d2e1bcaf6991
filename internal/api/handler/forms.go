package handler

type signupForm struct {
	Username string `form:"username" validate:"required,notblank,max=64"`
	Password string `form:"password" validate:"required"`
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Next     string `form:"next"`
}

type postJobForm struct {
	Title        string `form:"title" validate:"required,notblank,max=200"`
	Description  string `form:"description" validate:"required,notblank"`
	Requirements string `form:"requirements" validate:"required,notblank"`
}

type applicationForm struct {
	Name   string `form:"name" validate:"required,notblank"`
	Email  string `form:"email" validate:"required,email"`
	Resume string `form:"resume" validate:"required,notblank"`
}
