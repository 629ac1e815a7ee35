package platform

//go:generate go run ../../../internal/gen/categories -out .
