package kernel

type UserID string

func NewUserID(id string) UserID { return UserID(id) }
func (u UserID) String() string  { return string(u) }
func (u UserID) IsEmpty() bool   { return string(u) == "" }

type ResumeID string

func NewResumeID(id string) ResumeID { return ResumeID(id) }
func (r ResumeID) String() string    { return string(r) }
func (r ResumeID) IsEmpty() bool     { return string(r) == "" }

type TemplateID string

func NewTemplateID(id string) TemplateID { return TemplateID(id) }
func (t TemplateID) String() string      { return string(t) }
func (t TemplateID) IsEmpty() bool       { return string(t) == "" }

type JobDescriptionID string

func NewJobDescriptionID(id string) JobDescriptionID { return JobDescriptionID(id) }
func (j JobDescriptionID) String() string            { return string(j) }
func (j JobDescriptionID) IsEmpty() bool             { return string(j) == "" }

type ReportID string

func NewReportID(id string) ReportID { return ReportID(id) }
func (r ReportID) String() string    { return string(r) }
func (r ReportID) IsEmpty() bool     { return string(r) == "" }

type ProviderID string

func NewProviderID(id string) ProviderID { return ProviderID(id) }
func (p ProviderID) String() string      { return string(p) }
func (p ProviderID) IsEmpty() bool       { return string(p) == "" }

type ModelID string

func NewModelID(id string) ModelID { return ModelID(id) }
func (m ModelID) String() string   { return string(m) }
func (m ModelID) IsEmpty() bool    { return string(m) == "" }

type PlanID string

func NewPlanID(id string) PlanID { return PlanID(id) }
func (p PlanID) String() string  { return string(p) }
func (p PlanID) IsEmpty() bool   { return string(p) == "" }
