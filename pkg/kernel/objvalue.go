package kernel

type Email string

func (e Email) String() string { return string(e) }

type ResumeTitle string

type TexContent string

type JobDescriptionText string

type BlobPath string

func (b BlobPath) String() string { return string(b) }
