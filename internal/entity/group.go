package entity

type Group struct {
	Base
	Name         string
	Password     string
	ImageURL     string
	IsPublic     bool
	Introduction string
}
