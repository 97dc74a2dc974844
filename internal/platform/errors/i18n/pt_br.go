package i18n

var ptBRCatalog = &Catalog{
	locale: "pt-BR",
	messages: map[Code]string{
		// Event errors
		CodeEventIDRequired:              "O ID do evento é obrigatório",
		CodeEventTitleEmpty:              "O título do evento não pode ficar vazio",
		CodeEventStartMissing:            "A data de início do evento é obrigatória",
		CodeEventEndBeforeStart:          "O término do evento deve ser depois do início",
		CodeEventInvalidStatusTransition: "Não é possível mover o evento de {{.FromStatus}} para {{.ToStatus}}",
		CodeEventInvalidCapacity:         "A capacidade do evento não pode ser negativa",
		CodeEventOrganizerMissing:        "É necessário um organizador para criar um evento",
		CodeEventFull:                    "Este evento atingiu sua capacidade",
		CodeEventNotOpen:                 "Este evento não está aberto para confirmações",
		CodeNotEventOrganizer:            "Somente o organizador do evento pode fazer isso",

		// RSVP errors
		CodeRSVPEmptyEventID:      "O ID do evento é obrigatório para confirmar presença",
		CodeRSVPGuestNameEmpty:    "O nome do convidado não pode ficar vazio",
		CodeRSVPGuestEmailInvalid: "O e-mail do convidado é inválido",
		CodeRSVPInvalidStatus:     "Status de RSVP inválido",

		// Message errors
		CodeMessageEmptyEventID:  "O ID do evento é obrigatório para uma mensagem",
		CodeMessageSubjectEmpty:  "O assunto da mensagem não pode ficar vazio",
		CodeMessageBodyEmpty:     "O corpo da mensagem não pode ficar vazio",
		CodeMessageSenderMissing: "É necessário um remetente para enviar uma mensagem",

		// Invite grant errors
		CodeInviteGrantInvalid:  "O link de convite é inválido",
		CodeInviteGrantExpired:  "O link de convite expirou",
		CodeInviteGrantMismatch: "O campo {{.Field}} do link de convite não confere",

		// Dashboard stats errors
		CodeStatsUserIDInvalid:     "É necessário um ID de usuário válido",
		CodeStatsContractViolation: "As estatísticas do painel estão temporariamente indisponíveis",

		// User errors
		CodeUserNotFound: "Usuário não encontrado",

		// List query errors
		CodeFilterInvalid: "A expressão de filtro da lista é inválida",

		// Storage errors
		CodeNotFound:      "O recurso solicitado não foi encontrado",
		CodeAlreadyExists: "O recurso já existe",

		CodeUnknown: "Algo deu errado",
	},
}
