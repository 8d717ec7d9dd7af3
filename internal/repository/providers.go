package repository

type Repositories struct {
	Folders FolderStore
	Images  ImageStore
}

func NewRepositories(folders FolderStore, images ImageStore) *Repositories {
	return &Repositories{
		Folders: folders,
		Images:  images,
	}
}
