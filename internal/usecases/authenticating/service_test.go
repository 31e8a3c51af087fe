package authenticating

import (
	"testing"

	"github.com/salespulse/salespulse-api/infrastructure/repository/mocks"
	"github.com/salespulse/salespulse-api/internal/config"
	"github.com/salespulse/salespulse-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{SecretKey: "test-secret"}
}

func hashOf(password string) string {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(hash)
}

func activeUser() *domain.User {
	return &domain.User{
		ID:           7,
		Name:         "Ana",
		Lastname:     "Souza",
		Email:        "ana@empresa.com",
		Active:       true,
		RoleID:       3,
		PasswordHash: hashOf("Senha@123"),
		TeamIDs:      []string{"TEAM01"},
	}
}

func TestLoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		setup    func(userRepo *mocks.MockUserRepository)
		email    string
		password string
		validate func(t *testing.T, token string, err error)
	}{
		{
			name: "Login válido devolve token com os times do usuário",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("ana@empresa.com").Return(activeUser(), nil)
			},
			email:    "Ana@Empresa.com ",
			password: "Senha@123",
			validate: func(t *testing.T, token string, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			},
		},
		{
			name: "Senha incorreta",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("ana@empresa.com").Return(activeUser(), nil)
			},
			email:    "ana@empresa.com",
			password: "errada",
			validate: func(t *testing.T, token string, err error) {
				assert.Error(t, err)
				assert.True(t, IsCredentialsError(err))
			},
		},
		{
			name: "Conta desativada",
			setup: func(userRepo *mocks.MockUserRepository) {
				user := activeUser()
				user.Active = false
				userRepo.EXPECT().GetUserByEmail("ana@empresa.com").Return(user, nil)
			},
			email:    "ana@empresa.com",
			password: "Senha@123",
			validate: func(t *testing.T, token string, err error) {
				assert.Error(t, err)
			},
		},
		{
			name: "Usuário inexistente",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("ninguem@empresa.com").Return(nil, nil)
			},
			email:    "ninguem@empresa.com",
			password: "Senha@123",
			validate: func(t *testing.T, token string, err error) {
				assert.Error(t, err)
			},
		},
		{
			name:     "Email e senha obrigatórios",
			setup:    func(userRepo *mocks.MockUserRepository) {},
			email:    "",
			password: "",
			validate: func(t *testing.T, token string, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(userRepo)

			service := NewService(userRepo, testConfig())

			token, err := service.LoginUser(tt.email, tt.password)
			tt.validate(t, token, err)
		})
	}
}

func TestLoginAndValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByEmail("ana@empresa.com").Return(activeUser(), nil)

	service := NewService(userRepo, testConfig())

	token, err := service.LoginUser("ana@empresa.com", "Senha@123")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "ana@empresa.com", claims.UserEmail)
	assert.Equal(t, []string{"TEAM01"}, claims.UserTeams)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByEmail("ana@empresa.com").Return(activeUser(), nil)

	issuer := NewService(userRepo, testConfig())
	token, err := issuer.LoginUser("ana@empresa.com", "Senha@123")
	assert.NoError(t, err)

	verifier := NewService(userRepo, &config.Config{SecretKey: "outro-segredo"})
	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestCreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Cria usuário com senha criptografada e conta inativa", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("ana@empresa.com").Return(nil, nil)
		userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(
			func(user *domain.User) (*domain.User, error) {
				assert.NotEqual(t, "Senha@123", user.PasswordHash)
				assert.False(t, user.Active)
				assert.Equal(t, 3, user.RoleID)
				return user, nil
			})

		service := NewService(userRepo, testConfig())

		user, err := service.CreateUser(&domain.User{
			Name:         "Ana",
			Lastname:     "Souza",
			Email:        " Ana@Empresa.com",
			PasswordHash: "Senha@123",
		})
		assert.NoError(t, err)
		assert.Equal(t, "ana@empresa.com", user.Email)
	})

	t.Run("Email já cadastrado", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("ana@empresa.com").Return(activeUser(), nil)

		service := NewService(userRepo, testConfig())

		_, err := service.CreateUser(&domain.User{
			Name:         "Ana",
			Lastname:     "Souza",
			Email:        "ana@empresa.com",
			PasswordHash: "Senha@123",
		})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("Dados obrigatórios ausentes", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)

		service := NewService(userRepo, testConfig())

		_, err := service.CreateUser(&domain.User{Email: "ana@empresa.com"})
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestValidatePasswordStrength(t *testing.T) {
	service := &Service{}

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "Senha forte", password: "Senha@123", valid: true},
		{name: "Curta demais", password: "S@1a", valid: false},
		{name: "Sem maiúscula", password: "senha@123", valid: false},
		{name: "Sem minúscula", password: "SENHA@123", valid: false},
		{name: "Sem número", password: "Senha@abc", valid: false},
		{name: "Sem caractere especial", password: "Senha1234", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
		})
	}
}

func TestChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Troca com senha atual correta", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID(7).Return(activeUser(), nil)
		userRepo.EXPECT().UpdateUser(gomock.Any()).Return(nil)

		service := NewService(userRepo, testConfig())

		assert.NoError(t, service.ChangePassword(7, "Senha@123", "NovaSenha@456"))
	})

	t.Run("Senha atual incorreta", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID(7).Return(activeUser(), nil)

		service := NewService(userRepo, testConfig())

		err := service.ChangePassword(7, "errada", "NovaSenha@456")
		assert.Error(t, err)
	})

	t.Run("Nova senha fraca é rejeitada", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID(7).Return(activeUser(), nil)

		service := NewService(userRepo, testConfig())

		err := service.ChangePassword(7, "Senha@123", "fraca")
		assert.Error(t, err)
	})
}

func TestGenerateStrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Administrador gera senha para outro usuário", func(t *testing.T) {
		admin := activeUser()
		admin.ID = 1
		admin.RoleID = 1

		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID(1).Return(admin, nil)
		userRepo.EXPECT().GetUserByID(7).Return(activeUser(), nil)
		userRepo.EXPECT().UpdateUser(gomock.Any()).Return(nil)

		service := NewService(userRepo, testConfig())

		password, err := service.GenerateStrongPassword(1, 7)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, len(password), 12)
		assert.NoError(t, service.ValidatePasswordStrength(password))
	})

	t.Run("Não administrador é negado", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID(7).Return(activeUser(), nil)

		service := NewService(userRepo, testConfig())

		_, err := service.GenerateStrongPassword(7, 9)
		assert.Error(t, err)
	})
}
