package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle     = "app_title"
	KeyFile         = "file"
	KeySettings     = "settings"
	KeyLanguage     = "language"
	KeyShowLogs     = "show_logs"
	KeyLogout       = "logout"
	KeyQuit         = "quit"
	KeySave         = "save"
	KeyCancel       = "cancel"
	KeyRefresh      = "refresh"
	KeyInfo         = "info"
	KeyWarning      = "warning"
	KeyError        = "error"
	KeyNetworkError = "network_error"

	KeyLoginTitle      = "login_title"
	KeyEmail           = "email"
	KeyPassword        = "password"
	KeyLogin           = "login"
	KeySignup          = "signup"
	KeyNoAccount       = "no_account"
	KeyFillAllFields   = "fill_all_fields"
	KeySessionExpired  = "session_expired"
	KeySignupTitle     = "signup_title"
	KeyName            = "name"
	KeyConfirmPassword = "confirm_password"
	KeyRole            = "role"
	KeyRegister        = "register"
	KeyPasswordsDiffer = "passwords_differ"
	KeySignupSuccess   = "signup_success"
	KeyRolePatient     = "role_patient"
	KeyRoleDoctor      = "role_doctor"

	KeyTabAppointments  = "tab_appointments"
	KeyTabPrescriptions = "tab_prescriptions"
	KeyTabChat          = "tab_chat"
	KeyTabProfile       = "tab_profile"
	KeyTabPatients      = "tab_patients"

	KeyDateTime            = "date_time"
	KeyPatient             = "patient"
	KeyDoctor              = "doctor"
	KeyReason              = "reason"
	KeySelectDoctorHint    = "select_doctor_hint"
	KeyNoDoctors           = "no_doctors"
	KeyDateTimeHint        = "date_time_hint"
	KeySchedule            = "schedule"
	KeyUpdate              = "update"
	KeyNewDateTime         = "new_date_time"
	KeyTakenSlots          = "taken_slots"
	KeyNoTakenSlots        = "no_taken_slots"
	KeySelectDoctor        = "select_doctor"
	KeyEnterReason         = "enter_reason"
	KeyInvalidDateTime     = "invalid_date_time"
	KeySlotTaken           = "slot_taken"
	KeyAppointmentBooked   = "appointment_booked"
	KeySelectAppointment   = "select_appointment"
	KeyAppointmentUpdated  = "appointment_updated"
	KeyNoAppointments      = "no_appointments"
	KeyDate                = "date"
	KeyMedicine            = "medicine"
	KeyDosage              = "dosage"
	KeyPatientID           = "patient_id"
	KeyStartDate           = "start_date"
	KeyEndDate             = "end_date"
	KeyDoseTimes           = "dose_times"
	KeyAddPrescription     = "add_prescription"
	KeyMedicineRequired    = "medicine_required"
	KeyInvalidPatientID    = "invalid_patient_id"
	KeyInvalidDate         = "invalid_date"
	KeyPrescriptionAdded   = "prescription_added"
	KeyContacts            = "contacts"
	KeySend                = "send"
	KeyTypeMessage         = "type_message"
	KeySelectRecipient     = "select_recipient"
	KeyInvalidRecipientID  = "invalid_recipient_id"
	KeyChatWithDoctor      = "chat_with_doctor"
	KeyChatNotConnected    = "chat_not_connected"
	KeyYou                 = "you"
	KeyReminder            = "reminder"
	KeyChatStatus          = "chat_status"
	KeyRoleFormat          = "role_format"
	KeyDarkMode            = "dark_mode"
	KeyHealthInfo          = "health_info"
	KeyAge                 = "age"
	KeyWeight              = "weight"
	KeyAllergies           = "allergies"
	KeyChronicDiseases     = "chronic_diseases"
	KeyProfileUpdated      = "profile_updated"
	KeyInvalidNumber       = "invalid_number"
	KeyNameEmailRequired   = "name_email_required"
	KeyPatientDetails      = "patient_details"
	KeyNoPatientInfo       = "no_patient_info"
	KeySelectPatient       = "select_patient"
	KeyAPIURL              = "api_url"
	KeySocketURL           = "socket_url"
	KeyRequestTimeout      = "request_timeout"
	KeySettingsSaved       = "settings_saved"
	KeyInvalidServerURL    = "invalid_server_url"
	KeyInvalidTimeout      = "invalid_timeout"
	KeyErrorOpeningFile    = "error_opening_file"
	KeyReconnectOnNextOpen = "reconnect_on_next_login"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized text for key formatted with args
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:     "PortHealth",
		KeyFile:         "File",
		KeySettings:     "Settings",
		KeyLanguage:     "Language",
		KeyShowLogs:     "Show Logs",
		KeyLogout:       "Logout",
		KeyQuit:         "Quit",
		KeySave:         "Save",
		KeyCancel:       "Cancel",
		KeyRefresh:      "Refresh",
		KeyInfo:         "Information",
		KeyWarning:      "Warning",
		KeyError:        "Error",
		KeyNetworkError: "Could not connect to server: %s",

		KeyLoginTitle:      "Login",
		KeyEmail:           "Email",
		KeyPassword:        "Password",
		KeyLogin:           "Login",
		KeySignup:          "Sign up",
		KeyNoAccount:       "Don't have an account?",
		KeyFillAllFields:   "Please fill in all fields.",
		KeySessionExpired:  "Your session has expired. Please log in again.",
		KeySignupTitle:     "Create Account",
		KeyName:            "Name",
		KeyConfirmPassword: "Confirm Password",
		KeyRole:            "Role",
		KeyRegister:        "Register",
		KeyPasswordsDiffer: "Passwords do not match.",
		KeySignupSuccess:   "Account created. You can now log in.",
		KeyRolePatient:     "Patient",
		KeyRoleDoctor:      "Doctor",

		KeyTabAppointments:  "Appointments",
		KeyTabPrescriptions: "Prescriptions",
		KeyTabChat:          "Chat",
		KeyTabProfile:       "Profile",
		KeyTabPatients:      "Patients",

		KeyDateTime:            "Date/Time",
		KeyPatient:             "Patient",
		KeyDoctor:              "Doctor",
		KeyReason:              "Reason",
		KeySelectDoctorHint:    "Select doctor",
		KeyNoDoctors:           "No doctors available",
		KeyDateTimeHint:        "YYYY-MM-DD HH:MM",
		KeySchedule:            "Schedule",
		KeyUpdate:              "Update",
		KeyNewDateTime:         "New date/time",
		KeyTakenSlots:          "Taken slots",
		KeyNoTakenSlots:        "No taken slots",
		KeySelectDoctor:        "Please select a doctor.",
		KeyEnterReason:         "Please enter a reason for the visit.",
		KeyInvalidDateTime:     "Invalid date/time. Use YYYY-MM-DD HH:MM.",
		KeySlotTaken:           "This time slot is already taken.",
		KeyAppointmentBooked:   "Appointment scheduled.",
		KeySelectAppointment:   "Please select an appointment.",
		KeyAppointmentUpdated:  "Appointment updated.",
		KeyNoAppointments:      "No appointments",
		KeyDate:                "Date",
		KeyMedicine:            "Medicine",
		KeyDosage:              "Dosage",
		KeyPatientID:           "Patient ID",
		KeyStartDate:           "Start date (YYYY-MM-DD)",
		KeyEndDate:             "End date (YYYY-MM-DD)",
		KeyDoseTimes:           "Dose times (08:00, 20:00)",
		KeyAddPrescription:     "Add Prescription",
		KeyMedicineRequired:    "Medicine and dosage are required.",
		KeyInvalidPatientID:    "Patient ID must be a number.",
		KeyInvalidDate:         "Invalid date. Use YYYY-MM-DD.",
		KeyPrescriptionAdded:   "Prescription added.",
		KeyContacts:            "Contacts",
		KeySend:                "Send",
		KeyTypeMessage:         "Type a message...",
		KeySelectRecipient:     "Please select who to chat with.",
		KeyInvalidRecipientID:  "Please enter a valid patient ID.",
		KeyChatWithDoctor:      "Chat with %s",
		KeyChatNotConnected:    "Chat is not connected.",
		KeyYou:                 "You",
		KeyReminder:            "Reminder",
		KeyChatStatus:          "Chat: %s",
		KeyRoleFormat:          "Role: %s",
		KeyDarkMode:            "Dark mode",
		KeyHealthInfo:          "Health information",
		KeyAge:                 "Age",
		KeyWeight:              "Weight (kg)",
		KeyAllergies:           "Allergies",
		KeyChronicDiseases:     "Chronic diseases",
		KeyProfileUpdated:      "Profile updated.",
		KeyInvalidNumber:       "Age and weight must be numbers.",
		KeyNameEmailRequired:   "Name and email are required.",
		KeyPatientDetails:      "Patient details",
		KeyNoPatientInfo:       "No health information recorded.",
		KeySelectPatient:       "Select a patient to see details.",
		KeyAPIURL:              "API URL",
		KeySocketURL:           "Socket URL",
		KeyRequestTimeout:      "Request timeout (seconds)",
		KeySettingsSaved:       "Settings saved successfully!",
		KeyInvalidServerURL:    "Invalid server URL.",
		KeyInvalidTimeout:      "Timeout must be a number of seconds from 1 to 120.",
		KeyErrorOpeningFile:    "Error opening file",
		KeyReconnectOnNextOpen: "Server changes apply on next login.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:     "PortHealth",
		KeyFile:         "Файл",
		KeySettings:     "Настройки",
		KeyLanguage:     "Язык",
		KeyShowLogs:     "Показать журнал",
		KeyLogout:       "Выйти",
		KeyQuit:         "Закрыть",
		KeySave:         "Сохранить",
		KeyCancel:       "Отмена",
		KeyRefresh:      "Обновить",
		KeyInfo:         "Информация",
		KeyWarning:      "Предупреждение",
		KeyError:        "Ошибка",
		KeyNetworkError: "Не удалось подключиться к серверу: %s",

		KeyLoginTitle:      "Вход",
		KeyEmail:           "Эл. почта",
		KeyPassword:        "Пароль",
		KeyLogin:           "Войти",
		KeySignup:          "Регистрация",
		KeyNoAccount:       "Нет учетной записи?",
		KeyFillAllFields:   "Пожалуйста, заполните все поля.",
		KeySessionExpired:  "Сессия истекла. Войдите снова.",
		KeySignupTitle:     "Создание учетной записи",
		KeyName:            "Имя",
		KeyConfirmPassword: "Подтвердите пароль",
		KeyRole:            "Роль",
		KeyRegister:        "Зарегистрироваться",
		KeyPasswordsDiffer: "Пароли не совпадают.",
		KeySignupSuccess:   "Учетная запись создана. Теперь можно войти.",
		KeyRolePatient:     "Пациент",
		KeyRoleDoctor:      "Врач",

		KeyTabAppointments:  "Приемы",
		KeyTabPrescriptions: "Назначения",
		KeyTabChat:          "Чат",
		KeyTabProfile:       "Профиль",
		KeyTabPatients:      "Пациенты",

		KeyDateTime:            "Дата/время",
		KeyPatient:             "Пациент",
		KeyDoctor:              "Врач",
		KeyReason:              "Причина",
		KeySelectDoctorHint:    "Выберите врача",
		KeyNoDoctors:           "Нет доступных врачей",
		KeyDateTimeHint:        "ГГГГ-ММ-ДД ЧЧ:ММ",
		KeySchedule:            "Записаться",
		KeyUpdate:              "Изменить",
		KeyNewDateTime:         "Новые дата/время",
		KeyTakenSlots:          "Занятое время",
		KeyNoTakenSlots:        "Свободно",
		KeySelectDoctor:        "Пожалуйста, выберите врача.",
		KeyEnterReason:         "Пожалуйста, укажите причину визита.",
		KeyInvalidDateTime:     "Неверные дата/время. Формат ГГГГ-ММ-ДД ЧЧ:ММ.",
		KeySlotTaken:           "Это время уже занято.",
		KeyAppointmentBooked:   "Запись создана.",
		KeySelectAppointment:   "Пожалуйста, выберите прием.",
		KeyAppointmentUpdated:  "Прием изменен.",
		KeyNoAppointments:      "Нет приемов",
		KeyDate:                "Дата",
		KeyMedicine:            "Препарат",
		KeyDosage:              "Дозировка",
		KeyPatientID:           "ID пациента",
		KeyStartDate:           "Начало (ГГГГ-ММ-ДД)",
		KeyEndDate:             "Окончание (ГГГГ-ММ-ДД)",
		KeyDoseTimes:           "Время приема (08:00, 20:00)",
		KeyAddPrescription:     "Добавить назначение",
		KeyMedicineRequired:    "Препарат и дозировка обязательны.",
		KeyInvalidPatientID:    "ID пациента должен быть числом.",
		KeyInvalidDate:         "Неверная дата. Формат ГГГГ-ММ-ДД.",
		KeyPrescriptionAdded:   "Назначение добавлено.",
		KeyContacts:            "Контакты",
		KeySend:                "Отправить",
		KeyTypeMessage:         "Введите сообщение...",
		KeySelectRecipient:     "Пожалуйста, выберите собеседника.",
		KeyInvalidRecipientID:  "Введите корректный ID пациента.",
		KeyChatWithDoctor:      "Чат с %s",
		KeyChatNotConnected:    "Чат не подключен.",
		KeyYou:                 "Вы",
		KeyReminder:            "Напоминание",
		KeyChatStatus:          "Чат: %s",
		KeyRoleFormat:          "Роль: %s",
		KeyDarkMode:            "Темная тема",
		KeyHealthInfo:          "Сведения о здоровье",
		KeyAge:                 "Возраст",
		KeyWeight:              "Вес (кг)",
		KeyAllergies:           "Аллергии",
		KeyChronicDiseases:     "Хронические заболевания",
		KeyProfileUpdated:      "Профиль обновлен.",
		KeyInvalidNumber:       "Возраст и вес должны быть числами.",
		KeyNameEmailRequired:   "Имя и эл. почта обязательны.",
		KeyPatientDetails:      "Сведения о пациенте",
		KeyNoPatientInfo:       "Сведения о здоровье отсутствуют.",
		KeySelectPatient:       "Выберите пациента.",
		KeyAPIURL:              "Адрес API",
		KeySocketURL:           "Адрес сокета",
		KeyRequestTimeout:      "Таймаут запроса (сек.)",
		KeySettingsSaved:       "Настройки успешно сохранены!",
		KeyInvalidServerURL:    "Неверный адрес сервера.",
		KeyInvalidTimeout:      "Таймаут должен быть числом секунд от 1 до 120.",
		KeyErrorOpeningFile:    "Ошибка открытия файла",
		KeyReconnectOnNextOpen: "Изменения сервера применятся при следующем входе.",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:     "PortHealth",
		KeyFile:         "Arquivo",
		KeySettings:     "Configurações",
		KeyLanguage:     "Idioma",
		KeyShowLogs:     "Mostrar Logs",
		KeyLogout:       "Sair",
		KeyQuit:         "Fechar",
		KeySave:         "Salvar",
		KeyCancel:       "Cancelar",
		KeyRefresh:      "Atualizar",
		KeyInfo:         "Informação",
		KeyWarning:      "Aviso",
		KeyError:        "Erro",
		KeyNetworkError: "Não foi possível conectar ao servidor: %s",

		KeyLoginTitle:      "Entrar",
		KeyEmail:           "E-mail",
		KeyPassword:        "Senha",
		KeyLogin:           "Entrar",
		KeySignup:          "Cadastrar",
		KeyNoAccount:       "Não tem uma conta?",
		KeyFillAllFields:   "Por favor, preencha todos os campos.",
		KeySessionExpired:  "Sua sessão expirou. Entre novamente.",
		KeySignupTitle:     "Criar Conta",
		KeyName:            "Nome",
		KeyConfirmPassword: "Confirmar Senha",
		KeyRole:            "Perfil",
		KeyRegister:        "Registrar",
		KeyPasswordsDiffer: "As senhas não coincidem.",
		KeySignupSuccess:   "Conta criada. Agora você pode entrar.",
		KeyRolePatient:     "Paciente",
		KeyRoleDoctor:      "Médico",

		KeyTabAppointments:  "Consultas",
		KeyTabPrescriptions: "Prescrições",
		KeyTabChat:          "Chat",
		KeyTabProfile:       "Perfil",
		KeyTabPatients:      "Pacientes",

		KeyDateTime:            "Data/Hora",
		KeyPatient:             "Paciente",
		KeyDoctor:              "Médico",
		KeyReason:              "Motivo",
		KeySelectDoctorHint:    "Selecione o médico",
		KeyNoDoctors:           "Nenhum médico disponível",
		KeyDateTimeHint:        "AAAA-MM-DD HH:MM",
		KeySchedule:            "Agendar",
		KeyUpdate:              "Atualizar",
		KeyNewDateTime:         "Nova data/hora",
		KeyTakenSlots:          "Horários ocupados",
		KeyNoTakenSlots:        "Nenhum horário ocupado",
		KeySelectDoctor:        "Por favor, selecione um médico.",
		KeyEnterReason:         "Por favor, informe o motivo da consulta.",
		KeyInvalidDateTime:     "Data/hora inválida. Use AAAA-MM-DD HH:MM.",
		KeySlotTaken:           "Este horário já está ocupado.",
		KeyAppointmentBooked:   "Consulta agendada.",
		KeySelectAppointment:   "Por favor, selecione uma consulta.",
		KeyAppointmentUpdated:  "Consulta atualizada.",
		KeyNoAppointments:      "Nenhuma consulta",
		KeyDate:                "Data",
		KeyMedicine:            "Medicamento",
		KeyDosage:              "Dosagem",
		KeyPatientID:           "ID do paciente",
		KeyStartDate:           "Início (AAAA-MM-DD)",
		KeyEndDate:             "Fim (AAAA-MM-DD)",
		KeyDoseTimes:           "Horários (08:00, 20:00)",
		KeyAddPrescription:     "Adicionar Prescrição",
		KeyMedicineRequired:    "Medicamento e dosagem são obrigatórios.",
		KeyInvalidPatientID:    "O ID do paciente deve ser um número.",
		KeyInvalidDate:         "Data inválida. Use AAAA-MM-DD.",
		KeyPrescriptionAdded:   "Prescrição adicionada.",
		KeyContacts:            "Contatos",
		KeySend:                "Enviar",
		KeyTypeMessage:         "Digite uma mensagem...",
		KeySelectRecipient:     "Por favor, selecione com quem conversar.",
		KeyInvalidRecipientID:  "Informe um ID de paciente válido.",
		KeyChatWithDoctor:      "Conversa com %s",
		KeyChatNotConnected:    "O chat não está conectado.",
		KeyYou:                 "Você",
		KeyReminder:            "Lembrete",
		KeyChatStatus:          "Chat: %s",
		KeyRoleFormat:          "Perfil: %s",
		KeyDarkMode:            "Modo escuro",
		KeyHealthInfo:          "Informações de saúde",
		KeyAge:                 "Idade",
		KeyWeight:              "Peso (kg)",
		KeyAllergies:           "Alergias",
		KeyChronicDiseases:     "Doenças crônicas",
		KeyProfileUpdated:      "Perfil atualizado.",
		KeyInvalidNumber:       "Idade e peso devem ser números.",
		KeyNameEmailRequired:   "Nome e e-mail são obrigatórios.",
		KeyPatientDetails:      "Detalhes do paciente",
		KeyNoPatientInfo:       "Nenhuma informação de saúde registrada.",
		KeySelectPatient:       "Selecione um paciente para ver detalhes.",
		KeyAPIURL:              "URL da API",
		KeySocketURL:           "URL do socket",
		KeyRequestTimeout:      "Tempo limite (segundos)",
		KeySettingsSaved:       "Configurações salvas com sucesso!",
		KeyInvalidServerURL:    "URL do servidor inválida.",
		KeyInvalidTimeout:      "O tempo limite deve ser um número de segundos de 1 a 120.",
		KeyErrorOpeningFile:    "Erro ao abrir arquivo",
		KeyReconnectOnNextOpen: "Alterações do servidor valem no próximo login.",
	}
}
