package handler

import "github.com/techchallenge/user-service/internal/core/ports"

func (r registerUserRequest) toInput() ports.RegisterUserInput {
	return ports.RegisterUserInput{
		Name:     r.Name,
		Email:    r.Email,
		Login:    r.Login,
		Password: r.Password,
		UserType: r.UserType,
		Address:  r.Address.toInput(),
	}
}

func (r updateUserRequest) toInput() ports.UpdateUserInput {
	return ports.UpdateUserInput{
		Name:    r.Name,
		Email:   r.Email,
		Login:   r.Login,
		Address: r.Address.toInput(),
	}
}

func (r changePasswordRequest) toInput() ports.ChangePasswordInput {
	return ports.ChangePasswordInput{
		CurrentPassword: r.CurrentPassword,
		NewPassword:     r.NewPassword,
	}
}

func (a *addressRequest) toInput() *ports.AddressInput {
	if a == nil {
		return nil
	}
	return &ports.AddressInput{
		Street:  a.Street,
		Number:  a.Number,
		City:    a.City,
		ZipCode: a.ZipCode,
	}
}

func toUserResponse(u ports.UserResponse) userResponse {
	resp := userResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Login:          u.Login,
		UserType:       u.UserType,
		LastModifiedAt: u.LastModifiedAt,
	}
	if u.Address != nil {
		resp.Address = &addressResponse{
			Street:  u.Address.Street,
			Number:  u.Address.Number,
			City:    u.Address.City,
			ZipCode: u.Address.ZipCode,
		}
	}
	return resp
}

func toUserResponses(users []ports.UserResponse) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}
