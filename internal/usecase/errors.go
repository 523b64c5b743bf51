package usecase

import "errors"

// Business-rule failures. Handlers answer these with Status false.
var (
	ErrEmailTaken          = errors.New("user with this email already exists")
	ErrInvalidConfirmToken = errors.New("invalid email or confirmation token")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInactiveAccount     = errors.New("account is not activated")
	ErrProductInfoNotFound = errors.New("product offer not found")
	ErrBasketNotFound      = errors.New("basket not found")
	ErrEmptyBasket         = errors.New("basket is empty")
	ErrContactNotFound     = errors.New("contact not found")
	ErrShopNotFound        = errors.New("shop not found, upload a price list first")
	ErrPriceList           = errors.New("price list could not be imported")
)

// Caller errors. Handlers answer these with 403.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidIDs   = errors.New("items must be a comma separated list of ids")
)
