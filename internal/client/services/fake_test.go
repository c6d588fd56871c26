package services

import (
	"context"

	"github.com/ARKNravi/Gelatik/internal/client/api"
)

// fakeClient implements api.Client for unit tests; every call is counted.
type fakeClient struct {
	LoginRet *api.AuthResponse
	LoginErr error

	RegisterRet *api.AuthResponse
	RegisterErr error

	ProfileRet *api.UserProfile
	ProfileErr error

	UpdateProfileErr error

	VerifyRet *api.VerifyPasswordResponse
	VerifyErr error

	ChangeRet *api.ChangePasswordResponse
	ChangeErr error

	TranslatorsRet *api.TranslatorList
	OrdersRet      *api.OrderList
	ListErr        error

	PostsRet []api.ForumPost

	Calls int

	LastLogin    api.LoginRequest
	LastRegister api.RegisterRequest
	LastUpdate   api.ProfileUpdate
	LastVerify   string
	LastChange   api.ChangePasswordRequest
}

func (f *fakeClient) Login(_ context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	f.Calls++
	f.LastLogin = req
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(_ context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	f.Calls++
	f.LastRegister = req
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Profile(context.Context) (*api.UserProfile, error) {
	f.Calls++
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) UpdateProfile(_ context.Context, req api.ProfileUpdate) (*api.UserProfile, error) {
	f.Calls++
	f.LastUpdate = req
	if f.UpdateProfileErr != nil {
		return nil, f.UpdateProfileErr
	}
	return &api.UserProfile{ID: 1, FullName: req.FullName, BirthDate: req.BirthDate, Institution: req.Institution}, nil
}

func (f *fakeClient) VerifyPassword(_ context.Context, current string) (*api.VerifyPasswordResponse, error) {
	f.Calls++
	f.LastVerify = current
	return f.VerifyRet, f.VerifyErr
}

func (f *fakeClient) ChangePassword(_ context.Context, req api.ChangePasswordRequest) (*api.ChangePasswordResponse, error) {
	f.Calls++
	f.LastChange = req
	return f.ChangeRet, f.ChangeErr
}

func (f *fakeClient) Translators(context.Context) (*api.TranslatorList, error) {
	f.Calls++
	return f.TranslatorsRet, f.ListErr
}

func (f *fakeClient) MyOrders(context.Context) (*api.OrderList, error) {
	f.Calls++
	return f.OrdersRet, f.ListErr
}

func (f *fakeClient) ForumPosts(context.Context) ([]api.ForumPost, error) {
	f.Calls++
	return f.PostsRet, f.ListErr
}
