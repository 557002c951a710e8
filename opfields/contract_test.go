package opfields

import "testing"

func TestNamingContract(t *testing.T) {
	tests := []struct {
		got      string
		expected string
	}{
		{Names.CreateName("Users"), "createUsers"},
		{Names.ReadName("User"), "readUser"},
		{Names.UpdateName("Users"), "updateUsers"},
		{Names.DeleteName("Users"), "deleteUsers"},
		{Names.DeactivateName("Users"), "deactivateUsers"},
		{Names.ActivateName("Users"), "activateUsers"},
		{Names.ListName("Users"), "listUsers"},
		{Names.SearchName("Users"), "searchUsers"},
		{Names.PayloadName("Create", "Users"), "CreateUsersPayload"},
		{Names.CreateName("CompanyProfiles"), "createCompanyProfiles"},
		{Names.ReadName("Person"), "readPerson"},
	}

	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("Expected %q, got %q", tt.expected, tt.got)
		}
	}
}
