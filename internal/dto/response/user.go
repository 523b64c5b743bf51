package response

import (
	"retail-backend/internal/data/entity"
)

type ContactResponse struct {
	ID        int64  `json:"id"`
	City      string `json:"city"`
	Street    string `json:"street"`
	House     string `json:"house"`
	Structure string `json:"structure"`
	Building  string `json:"building"`
	Apartment string `json:"apartment"`
	Phone     string `json:"phone"`
}

type UserResponse struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	FirstName string            `json:"first_name"`
	LastName  string            `json:"last_name"`
	Company   string            `json:"company"`
	Position  string            `json:"position"`
	Type      string            `json:"type"`
	Contacts  []ContactResponse `json:"contacts"`
}

// Helper converters
func ContactToResponse(contact *entity.Contact) ContactResponse {
	return ContactResponse{
		ID:        contact.ID,
		City:      contact.City,
		Street:    contact.Street,
		House:     contact.House,
		Structure: contact.Structure,
		Building:  contact.Building,
		Apartment: contact.Apartment,
		Phone:     contact.Phone,
	}
}

func ContactsToResponse(contacts []entity.Contact) []ContactResponse {
	result := make([]ContactResponse, 0, len(contacts))
	for i := range contacts {
		result = append(result, ContactToResponse(&contacts[i]))
	}
	return result
}

func UserToResponse(user *entity.User, contacts []entity.Contact) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Company:   user.Company,
		Position:  user.Position,
		Type:      string(user.Type),
		Contacts:  ContactsToResponse(contacts),
	}
}
