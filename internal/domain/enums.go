package domain

// Role is the global privilege tier of a user. Ordering: admin > manager > user.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleUser    Role = "user"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleUser:
		return true
	}
	return false
}

func (r Role) IsAdmin() bool { return r == RoleAdmin }

// IsManagerOrAbove reports whether the role is manager or admin.
func (r Role) IsManagerOrAbove() bool { return r == RoleAdmin || r == RoleManager }

// ProfileStatus is the account state of a user profile.
type ProfileStatus string

const (
	ProfileStatusActive    ProfileStatus = "active"
	ProfileStatusInactive  ProfileStatus = "inactive"
	ProfileStatusSuspended ProfileStatus = "suspended"
)

func (s ProfileStatus) String() string { return string(s) }

func (s ProfileStatus) IsValid() bool {
	switch s {
	case ProfileStatusActive, ProfileStatusInactive, ProfileStatusSuspended:
		return true
	}
	return false
}

// TeamRole is a per-team role, independent of the global Role.
type TeamRole string

const (
	TeamRoleOwner   TeamRole = "owner"
	TeamRoleManager TeamRole = "manager"
	TeamRoleMember  TeamRole = "member"
)

func (r TeamRole) String() string { return string(r) }

func (r TeamRole) IsValid() bool {
	switch r {
	case TeamRoleOwner, TeamRoleManager, TeamRoleMember:
		return true
	}
	return false
}

// LeadSource is the channel a lead came in through.
type LeadSource string

const (
	LeadSourceWebsite   LeadSource = "website"
	LeadSourceWhatsApp  LeadSource = "whatsapp"
	LeadSourceInstagram LeadSource = "instagram"
	LeadSourceReferral  LeadSource = "referral"
	LeadSourceCall      LeadSource = "call"
	LeadSourceEmail     LeadSource = "email"
	LeadSourceOther     LeadSource = "other"
)

// LeadSources lists every lead source in display order.
var LeadSources = []LeadSource{
	LeadSourceWebsite, LeadSourceWhatsApp, LeadSourceInstagram, LeadSourceReferral,
	LeadSourceCall, LeadSourceEmail, LeadSourceOther,
}

func (s LeadSource) String() string { return string(s) }

func (s LeadSource) IsValid() bool {
	switch s {
	case LeadSourceWebsite, LeadSourceWhatsApp, LeadSourceInstagram, LeadSourceReferral,
		LeadSourceCall, LeadSourceEmail, LeadSourceOther:
		return true
	}
	return false
}

// LeadStatus is a state of the lead funnel.
type LeadStatus string

const (
	LeadStatusNew        LeadStatus = "new"
	LeadStatusContacted  LeadStatus = "contacted"
	LeadStatusInterested LeadStatus = "interested"
	LeadStatusConverted  LeadStatus = "converted"
	LeadStatusLost       LeadStatus = "lost"
)

// LeadStatuses lists every lead status in funnel order.
var LeadStatuses = []LeadStatus{
	LeadStatusNew, LeadStatusContacted, LeadStatusInterested, LeadStatusConverted, LeadStatusLost,
}

func (s LeadStatus) String() string { return string(s) }

func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusInterested, LeadStatusConverted, LeadStatusLost:
		return true
	}
	return false
}

// DealStage is a column of the deal pipeline.
type DealStage string

const (
	DealStageInquiry     DealStage = "inquiry"
	DealStageProposal    DealStage = "proposal"
	DealStageNegotiation DealStage = "negotiation"
	DealStageClosedWon   DealStage = "closed_won"
	DealStageClosedLost  DealStage = "closed_lost"
)

// DealStages lists every stage in pipeline order.
var DealStages = []DealStage{
	DealStageInquiry, DealStageProposal, DealStageNegotiation, DealStageClosedWon, DealStageClosedLost,
}

func (s DealStage) String() string { return string(s) }

func (s DealStage) IsValid() bool {
	switch s {
	case DealStageInquiry, DealStageProposal, DealStageNegotiation, DealStageClosedWon, DealStageClosedLost:
		return true
	}
	return false
}

// IsClosed reports whether the stage is closed_won or closed_lost.
func (s DealStage) IsClosed() bool {
	return s == DealStageClosedWon || s == DealStageClosedLost
}

// TaskPriority is the urgency of a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

func (p TaskPriority) String() string { return string(p) }

func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return true
	}
	return false
}

// TaskStatus is the progress state of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

func (s TaskStatus) String() string { return string(s) }

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

// IsOpen reports whether the task still needs work.
func (s TaskStatus) IsOpen() bool {
	return s == TaskStatusPending || s == TaskStatusInProgress
}

// CommunicationType is the channel of a logged communication.
type CommunicationType string

const (
	CommunicationTypeCall     CommunicationType = "call"
	CommunicationTypeEmail    CommunicationType = "email"
	CommunicationTypeMeeting  CommunicationType = "meeting"
	CommunicationTypeWhatsApp CommunicationType = "whatsapp"
	CommunicationTypeChat     CommunicationType = "chat"
	CommunicationTypeOther    CommunicationType = "other"
)

func (t CommunicationType) String() string { return string(t) }

func (t CommunicationType) IsValid() bool {
	switch t {
	case CommunicationTypeCall, CommunicationTypeEmail, CommunicationTypeMeeting,
		CommunicationTypeWhatsApp, CommunicationTypeChat, CommunicationTypeOther:
		return true
	}
	return false
}

// CommunicationDirection tells who initiated a communication.
type CommunicationDirection string

const (
	CommunicationInbound  CommunicationDirection = "inbound"
	CommunicationOutbound CommunicationDirection = "outbound"
)

func (d CommunicationDirection) String() string { return string(d) }

func (d CommunicationDirection) IsValid() bool {
	return d == CommunicationInbound || d == CommunicationOutbound
}

// ActivityType classifies lead, contact and deal activity entries.
type ActivityType string

const (
	ActivityTypeNote     ActivityType = "note"
	ActivityTypeCall     ActivityType = "call"
	ActivityTypeEmail    ActivityType = "email"
	ActivityTypeMeeting  ActivityType = "meeting"
	ActivityTypeFollowUp ActivityType = "follow_up"
	ActivityTypeOther    ActivityType = "other"
)

func (t ActivityType) String() string { return string(t) }

func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityTypeNote, ActivityTypeCall, ActivityTypeEmail, ActivityTypeMeeting,
		ActivityTypeFollowUp, ActivityTypeOther:
		return true
	}
	return false
}

// PhoneType labels a contact phone number.
type PhoneType string

const (
	PhoneTypeMobile PhoneType = "mobile"
	PhoneTypeWork   PhoneType = "work"
	PhoneTypeHome   PhoneType = "home"
	PhoneTypeOther  PhoneType = "other"
)

func (t PhoneType) IsValid() bool {
	switch t {
	case PhoneTypeMobile, PhoneTypeWork, PhoneTypeHome, PhoneTypeOther:
		return true
	}
	return false
}

// EmailType labels a contact e-mail address.
type EmailType string

const (
	EmailTypeWork     EmailType = "work"
	EmailTypePersonal EmailType = "personal"
	EmailTypeOther    EmailType = "other"
)

func (t EmailType) IsValid() bool {
	switch t {
	case EmailTypeWork, EmailTypePersonal, EmailTypeOther:
		return true
	}
	return false
}

// DocumentCategory classifies uploaded documents.
type DocumentCategory string

const (
	DocumentCategoryProposal  DocumentCategory = "proposal"
	DocumentCategoryQuotation DocumentCategory = "quotation"
	DocumentCategoryInvoice   DocumentCategory = "invoice"
	DocumentCategoryContract  DocumentCategory = "contract"
	DocumentCategoryOther     DocumentCategory = "other"
)

func (c DocumentCategory) IsValid() bool {
	switch c {
	case DocumentCategoryProposal, DocumentCategoryQuotation, DocumentCategoryInvoice,
		DocumentCategoryContract, DocumentCategoryOther:
		return true
	}
	return false
}

// EntityType identifies the kind of entity an audit record refers to.
type EntityType string

const (
	EntityTypeUser          EntityType = "user"
	EntityTypeProfile       EntityType = "profile"
	EntityTypeTeam          EntityType = "team"
	EntityTypeTeamMember    EntityType = "team_member"
	EntityTypeLead          EntityType = "lead"
	EntityTypeContact       EntityType = "contact"
	EntityTypeDeal          EntityType = "deal"
	EntityTypeTask          EntityType = "task"
	EntityTypeNote          EntityType = "note"
	EntityTypeCommunication EntityType = "communication"
	EntityTypeDocument      EntityType = "document"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeUser, EntityTypeProfile, EntityTypeTeam, EntityTypeTeamMember,
		EntityTypeLead, EntityTypeContact, EntityTypeDeal, EntityTypeTask,
		EntityTypeNote, EntityTypeCommunication, EntityTypeDocument:
		return true
	}
	return false
}

// AuditAction is the closed vocabulary of audited mutations.
type AuditAction string

const (
	AuditUserLogin         AuditAction = "user.login"
	AuditUserLogout        AuditAction = "user.logout"
	AuditUserSignup        AuditAction = "user.signup"
	AuditUserUpdateProfile AuditAction = "user.update_profile"
	AuditUserUpdateRole    AuditAction = "user.update_role"
	AuditUserUpdateStatus  AuditAction = "user.update_status"

	AuditTeamCreate           AuditAction = "team.create"
	AuditTeamUpdate           AuditAction = "team.update"
	AuditTeamDelete           AuditAction = "team.delete"
	AuditTeamAddMember        AuditAction = "team.add_member"
	AuditTeamRemoveMember     AuditAction = "team.remove_member"
	AuditTeamUpdateMemberRole AuditAction = "team.update_member_role"

	AuditLeadCreate       AuditAction = "lead.create"
	AuditLeadUpdate       AuditAction = "lead.update"
	AuditLeadStatusChange AuditAction = "lead.status_change"
	AuditLeadReassign     AuditAction = "lead.reassign"
	AuditLeadConvert      AuditAction = "lead.convert"

	AuditContactCreate AuditAction = "contact.create"
	AuditContactUpdate AuditAction = "contact.update"
	AuditContactDelete AuditAction = "contact.delete"

	AuditDealCreate      AuditAction = "deal.create"
	AuditDealUpdate      AuditAction = "deal.update"
	AuditDealStageChange AuditAction = "deal.stage_change"
	AuditDealReassign    AuditAction = "deal.reassign"

	AuditTaskCreate       AuditAction = "task.create"
	AuditTaskUpdate       AuditAction = "task.update"
	AuditTaskStatusChange AuditAction = "task.status_change"
	AuditTaskDelete       AuditAction = "task.delete"

	AuditNoteCreate          AuditAction = "note.create"
	AuditCommunicationCreate AuditAction = "communication.create"
	AuditDocumentUpload      AuditAction = "document.upload"
	AuditDocumentDelete      AuditAction = "document.delete"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditUserLogin, AuditUserLogout, AuditUserSignup, AuditUserUpdateProfile,
		AuditUserUpdateRole, AuditUserUpdateStatus,
		AuditTeamCreate, AuditTeamUpdate, AuditTeamDelete, AuditTeamAddMember,
		AuditTeamRemoveMember, AuditTeamUpdateMemberRole,
		AuditLeadCreate, AuditLeadUpdate, AuditLeadStatusChange, AuditLeadReassign, AuditLeadConvert,
		AuditContactCreate, AuditContactUpdate, AuditContactDelete,
		AuditDealCreate, AuditDealUpdate, AuditDealStageChange, AuditDealReassign,
		AuditTaskCreate, AuditTaskUpdate, AuditTaskStatusChange, AuditTaskDelete,
		AuditNoteCreate, AuditCommunicationCreate, AuditDocumentUpload, AuditDocumentDelete:
		return true
	}
	return false
}
